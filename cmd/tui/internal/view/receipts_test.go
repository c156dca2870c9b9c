package view

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/sale"
)

func TestReceiptsModel_Queue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sale.NewMockRepository(ctrl)
	sender := notify.NewMockSender(ctrl)

	sales := sale.NewService(repo)
	m := NewReceiptsModel(sales, notify.NewService(sales, sender, zap.NewNop(), "Toko Waserda"))

	first := &sale.Sale{ID: uuid.New(), BuyerName: "Siti", BuyerPhone: "+6281234567890", Status: sale.StatusFailed}
	second := &sale.Sale{ID: uuid.New(), BuyerName: "Budi", BuyerPhone: "+6281111111111", Status: sale.StatusFailed}

	repo.EXPECT().ListByStatus(gomock.Any(), sale.StatusFailed, sale.ListLimit).Return([]*sale.Sale{first, second}, nil)

	next, _ := m.Update(m.Init()())
	m = next.(ReceiptsModel)
	require.Equal(t, first, m.current)
	assert.Contains(t, m.View(), "Siti")

	// A failed resend keeps the sale on screen.
	repo.EXPECT().GetSale(gomock.Any(), first.ID).Return(first, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), first.ID, sale.StatusPending, gomock.Nil()).Return(nil)
	sender.EXPECT().Send(gomock.Any(), "6281234567890", gomock.Any()).Return(errors.New("gateway down"))
	repo.EXPECT().UpdateStatus(gomock.Any(), first.ID, sale.StatusFailed, gomock.Nil()).Return(nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ReceiptsModel)
	require.NotNil(t, cmd)
	assert.True(t, m.sending)

	next, _ = m.Update(cmd())
	m = next.(ReceiptsModel)
	assert.False(t, m.sending)
	assert.Equal(t, first, m.current)
	assert.Contains(t, m.status, "gateway down")

	// Skipping moves on without sending.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(ReceiptsModel)
	require.Equal(t, second, m.current)

	repo.EXPECT().GetSale(gomock.Any(), second.ID).Return(second, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), second.ID, sale.StatusPending, gomock.Nil()).Return(nil)
	sender.EXPECT().Send(gomock.Any(), "6281111111111", gomock.Any()).Return(nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), second.ID, sale.StatusSent, gomock.Not(gomock.Nil())).Return(nil)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ReceiptsModel)
	next, _ = m.Update(cmd())
	m = next.(ReceiptsModel)

	assert.Nil(t, m.current)
	assert.Equal(t, 1, m.delivered)
	assert.Contains(t, m.View(), "1 of 2 receipts delivered")
}

func TestReceiptsModel_Empty(t *testing.T) {
	m := NewReceiptsModel(nil, nil)

	next, _ := m.Update(loadFailedMsg{})
	m = next.(ReceiptsModel)

	assert.Nil(t, m.current)
	assert.Contains(t, m.View(), "No failed receipts")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestDescribeResend(t *testing.T) {
	assert.Equal(t, "Receipt sent.", describeResend(resendMsg{result: notify.Result{Outcome: notify.OutcomeSent, Status: sale.StatusSent}}))
	assert.Contains(t, describeResend(resendMsg{err: errors.New("boom")}), "boom")
	assert.Contains(t, describeResend(resendMsg{result: notify.Result{Status: sale.StatusFailed, Err: errors.New("timeout")}}), "timeout")
}
