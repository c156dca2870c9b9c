package importer

// Kind selects which directory a CSV feeds.
type Kind string

const (
	KindBuyers    Kind = "buyers"
	KindInvestors Kind = "investors"
)

// field is a logical column with the header spellings accepted for it. Headers are
// compared lower-cased and trimmed.
type field struct {
	name     string
	aliases  []string
	required bool
}

// Profile describes the columns of one directory export.
type Profile struct {
	Kind   Kind
	fields []field
}

var buyerProfile = Profile{
	Kind: KindBuyers,
	fields: []field{
		{name: "name", aliases: []string{"nama", "name", "nama pembeli", "pembeli"}, required: true},
		{name: "phone", aliases: []string{"telepon", "no hp", "no. hp", "hp", "whatsapp", "no wa", "wa", "phone", "phone_e164"}},
		{name: "opt_in", aliases: []string{"wa_opt_in", "opt in", "opt-in", "kirim wa"}},
		{name: "note", aliases: []string{"catatan", "keterangan", "note"}},
	},
}

var investorProfile = Profile{
	Kind: KindInvestors,
	fields: []field{
		{name: "name", aliases: []string{"nama", "name", "pemodal", "nama pemodal"}, required: true},
		{name: "year", aliases: []string{"tahun", "year"}, required: true},
		{name: "amount", aliases: []string{"jumlah", "nominal", "modal", "amount", "amount_idr"}, required: true},
		{name: "note", aliases: []string{"catatan", "keterangan", "note"}},
	},
}

// match maps logical field names to column indices when every required field is present.
func (p Profile) match(header []string) (map[string]int, bool) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[normalizeHeader(h)] = i
	}

	cols := make(map[string]int, len(p.fields))

	for _, f := range p.fields {
		for _, a := range f.aliases {
			if i, ok := pos[a]; ok {
				cols[f.name] = i
				break
			}
		}

		if _, ok := cols[f.name]; !ok && f.required {
			return nil, false
		}
	}

	return cols, true
}

// ProfileFor returns the column profile of kind, defaulting to buyers.
func ProfileFor(kind Kind) Profile {
	if kind == KindInvestors {
		return investorProfile
	}

	return buyerProfile
}

// Columns lists the preferred header of each column. Required ones end in "*".
func (p Profile) Columns() []string {
	cols := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		h := f.aliases[0]
		if f.required {
			h += "*"
		}

		cols = append(cols, h)
	}

	return cols
}
