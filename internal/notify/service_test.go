package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/sale"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func TestService_Dispatch(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name        string
		sale        func() *sale.Sale
		setupMock   func(sales *notify.MockSales, sender *notify.MockSender)
		wantOutcome notify.Outcome
		wantStatus  sale.Status
		wantSoftErr bool
	}

	tests := []testCase{
		{
			name: "Delivered",
			sale: sampleSale,
			setupMock: func(sales *notify.MockSales, sender *notify.MockSender) {
				sender.EXPECT().Send(gomock.Any(), "6281234567890", gomock.Any()).Return(nil)
				sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusSent, &fixedNow).Return(nil)
			},
			wantOutcome: notify.OutcomeSent,
			wantStatus:  sale.StatusSent,
		},
		{
			name: "NoPhoneSkipped",
			sale: func() *sale.Sale {
				s := sampleSale()
				s.BuyerPhone = ""
				s.Status = sale.StatusNone
				return s
			},
			wantOutcome: notify.OutcomeSkipped,
			wantStatus:  sale.StatusNone,
		},
		{
			name: "ChannelRejects",
			sale: sampleSale,
			setupMock: func(sales *notify.MockSales, sender *notify.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&apperr.NotificationError{StatusCode: 500})
				sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusFailed, gomock.Nil()).Return(nil)
			},
			wantOutcome: notify.OutcomeFailed,
			wantStatus:  sale.StatusFailed,
			wantSoftErr: true,
		},
		{
			name: "TransportErrorIsWrapped",
			sale: sampleSale,
			setupMock: func(sales *notify.MockSales, sender *notify.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))
				sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusFailed, gomock.Nil()).Return(nil)
			},
			wantOutcome: notify.OutcomeFailed,
			wantStatus:  sale.StatusFailed,
			wantSoftErr: true,
		},
		{
			name: "RecordingOutcomeFails",
			sale: sampleSale,
			setupMock: func(sales *notify.MockSales, sender *notify.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusSent, gomock.Any()).
					Return(&apperr.StorageError{Op: "update receipt status", Err: errors.New("conn closed")})
			},
			wantOutcome: notify.OutcomeSent,
			wantStatus:  sale.StatusSent,
			wantSoftErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sales := notify.NewMockSales(ctrl)
			sender := notify.NewMockSender(ctrl)

			s := tt.sale()
			s.ID = id
			sales.EXPECT().Get(gomock.Any(), id).Return(s, nil)

			if tt.setupMock != nil {
				tt.setupMock(sales, sender)
			}

			svc := notify.NewService(sales, sender, zap.NewNop(), "Toko Waserda",
				notify.WithClock(func() time.Time { return fixedNow }))

			res, err := svc.Dispatch(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantStatus, res.Status)

			if tt.wantSoftErr {
				assert.Error(t, res.Err)
			} else {
				assert.NoError(t, res.Err)
			}

			if tt.wantOutcome == notify.OutcomeFailed {
				var ne *apperr.NotificationError
				assert.ErrorAs(t, res.Err, &ne)
			}
		})
	}
}

func TestService_Dispatch_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := notify.NewMockSales(ctrl)
	id := uuid.New()

	sales.EXPECT().Get(gomock.Any(), id).Return(nil, sale.ErrNotFound)

	_, err := notify.NewService(sales, notify.NewMockSender(ctrl), zap.NewNop(), "Toko").Dispatch(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Resend(t *testing.T) {
	id := uuid.New()

	t.Run("FailedMovesBackToPending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := notify.NewMockSales(ctrl)
		sender := notify.NewMockSender(ctrl)

		s := sampleSale()
		s.ID = id
		s.Status = sale.StatusFailed

		gomock.InOrder(
			sales.EXPECT().Get(gomock.Any(), id).Return(s, nil),
			sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusPending, gomock.Nil()).Return(nil),
			sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusSent, gomock.Not(gomock.Nil())).Return(nil),
		)

		res, err := notify.NewService(sales, sender, zap.NewNop(), "Toko").Resend(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, notify.OutcomeSent, res.Outcome)
	})

	t.Run("SentStaysSentOnFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := notify.NewMockSales(ctrl)
		sender := notify.NewMockSender(ctrl)

		s := sampleSale()
		s.ID = id
		s.Status = sale.StatusSent

		sales.EXPECT().Get(gomock.Any(), id).Return(s, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(&apperr.NotificationError{StatusCode: 503})

		res, err := notify.NewService(sales, sender, zap.NewNop(), "Toko").Resend(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, notify.OutcomeFailed, res.Outcome)
		assert.Equal(t, sale.StatusSent, res.Status)
	})

	t.Run("NoPhone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := notify.NewMockSales(ctrl)

		s := sampleSale()
		s.ID = id
		s.BuyerPhone = ""

		sales.EXPECT().Get(gomock.Any(), id).Return(s, nil)

		_, err := notify.NewService(sales, notify.NewMockSender(ctrl), zap.NewNop(), "Toko").Resend(context.Background(), id)
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestService_SendTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := notify.NewMockSales(ctrl)
	sender := notify.NewMockSender(ctrl)
	id := uuid.New()

	s := sampleSale()
	s.ID = id

	sales.EXPECT().Get(gomock.Any(), id).Return(s, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		})
	sales.EXPECT().SetStatus(gomock.Any(), id, sale.StatusFailed, gomock.Nil()).Return(nil)

	svc := notify.NewService(sales, sender, zap.NewNop(), "Toko", notify.WithTimeout(20*time.Millisecond))

	res, err := svc.Dispatch(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, notify.OutcomeFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}
