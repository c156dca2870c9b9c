package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/buyer"
	"github.com/waserda/kasir/internal/importer"
	"github.com/waserda/kasir/internal/investor"
)

type fakeBuyers struct {
	got []buyer.CreateParams
}

func (f *fakeBuyers) CreateBatch(_ context.Context, params []buyer.CreateParams) ([]*buyer.Buyer, error) {
	f.got = params

	out := make([]*buyer.Buyer, len(params))
	for i, p := range params {
		out[i] = &buyer.Buyer{Name: p.Name}
	}

	return out, nil
}

type fakeInvestors struct {
	got []investor.CreateParams
}

func (f *fakeInvestors) CreateBatch(_ context.Context, params []investor.CreateParams) ([]*investor.Investor, error) {
	f.got = params
	return make([]*investor.Investor, len(params)), nil
}

func TestService_ImportBuyers(t *testing.T) {
	fb := &fakeBuyers{}
	svc := importer.NewService(fb, &fakeInvestors{})

	got, err := svc.ImportBuyers(context.Background(), strings.NewReader("nama;hp\nBu Sri;0812345678\n"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "0812345678", fb.got[0].Phone)

	_, err = svc.ImportBuyers(context.Background(), strings.NewReader("x\n"))
	assert.True(t, apperr.IsValidation(err))
}

func TestService_ImportInvestors(t *testing.T) {
	fi := &fakeInvestors{}
	svc := importer.NewService(&fakeBuyers{}, fi)

	got, err := svc.ImportInvestors(context.Background(), strings.NewReader("tahun,nama,modal\n2025,A,\"1.000.000\"\n"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1000000), fi.got[0].Amount)
}

func TestService_Import(t *testing.T) {
	fb := &fakeBuyers{}
	fi := &fakeInvestors{}
	svc := importer.NewService(fb, fi)

	n, err := svc.Import(context.Background(), importer.KindBuyers, strings.NewReader("name,phone\nSiti,\nBudi,0812\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Import(context.Background(), importer.KindInvestors, strings.NewReader("nama,tahun,jumlah\nA,2024,500\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Import(context.Background(), importer.Kind("suppliers"), strings.NewReader("x\n"))
	assert.True(t, apperr.IsValidation(err))
}

func TestProfile_Columns(t *testing.T) {
	assert.Equal(t, []string{"nama*", "telepon", "wa_opt_in", "catatan"}, importer.ProfileFor(importer.KindBuyers).Columns())
	assert.Equal(t, []string{"nama*", "tahun*", "jumlah*", "catatan"}, importer.ProfileFor(importer.KindInvestors).Columns())
}
