package service_test

import (
	"context"
	"errors"
	"lodging/config"
	kafkaMocks "lodging/infras/kafka/mocks"
	otelMocks "lodging/infras/otel/mocks"
	documentMocks "lodging/internal/domains/document/mocks"
	guestMocks "lodging/internal/domains/guest/mocks"
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/internal/domains/receipt/mocks"
	"lodging/internal/domains/receipt/model"
	"lodging/internal/domains/receipt/service"
	cacheMocks "lodging/shared/cache/mocks"
	"lodging/shared/failure"
	repoMocks "lodging/shared/repository/mocks"
	"regexp"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	guestRepo   *guestMocks.MockGuest
	receiptRepo *mocks.MockReceipt
	transactor  *repoMocks.MockTransactor
	document    *documentMocks.MockDocument
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
}

func setup(t *testing.T) (service.Receipt, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		guestRepo:   guestMocks.NewMockGuest(ctrl),
		receiptRepo: mocks.NewMockReceipt(ctrl),
		transactor:  repoMocks.NewMockTransactor(ctrl),
		document:    documentMocks.NewMockDocument(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Receipt.FormalWidth = 6
	cfg.App.PropertyName = "Aggarwal Bhawan"
	cfg.Kafka.Topics.Receipt = "receipt-events"

	svc := service.New(d.guestRepo, d.receiptRepo, d.transactor, d.document, cfg, d.cache, d.kafka, otelMocks.NewOtel())

	return svc, d
}

func runTx(d deps) {
	d.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func allowBackground(d deps) {
	d.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 0).Return(int64(1), nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// dailyStore keeps issued receipts and the day counter the way the database would.
type dailyStore struct {
	issued  map[string]bool
	counter int
}

func (s *dailyStore) expect(d deps) {
	d.transactor.EXPECT().Savepoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), gomock.Any(), model.DailyReceiptLen).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, prefix string, length int) (string, error) {
			latest := ""

			for number := range s.issued {
				if len(number) == length && number[:len(prefix)] == prefix && number > latest {
					latest = number
				}
			}

			return latest, nil
		}).AnyTimes()

	d.receiptRepo.EXPECT().NextDailyTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ time.Time, floor int) (int, error) {
			s.counter = max(s.counter+1, floor)

			return s.counter, nil
		}).AnyTimes()

	d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, number string) (bool, error) {
			return s.issued[number], nil
		}).AnyTimes()
}

func TestReceiptService_AllocateDaily_Sequence(t *testing.T) {
	svc, d := setup(t)

	store := &dailyStore{issued: map[string]bool{}}
	store.expect(d)

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	first, err := svc.AllocateDaily(context.Background(), nil, now)
	require.NoError(t, err)
	assert.Equal(t, "RCP202610160001", first)

	store.issued[first] = true

	second, err := svc.AllocateDaily(context.Background(), nil, now)
	require.NoError(t, err)
	assert.Equal(t, "RCP202610160002", second)
}

func TestReceiptService_AllocateDaily_ContinuesFromStoredReceipts(t *testing.T) {
	svc, d := setup(t)

	store := &dailyStore{issued: map[string]bool{
		"RCP202610160041":   true,
		"RCP20261016004155": true,
		"RCP20261016093000": true,
		"RCP202610150099":   true,
	}}
	store.expect(d)

	number, err := svc.AllocateDaily(context.Background(), nil, time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "RCP202610160042", number)
}

func TestReceiptService_AllocateDaily_CollisionAddsSuffix(t *testing.T) {
	svc, d := setup(t)

	d.transactor.EXPECT().Savepoint(gomock.Any(), gomock.Any(), "daily_receipt").Return(nil)
	d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), "RCP20261016", model.DailyReceiptLen).Return("", nil)
	d.receiptRepo.EXPECT().NextDailyTx(gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(3, nil)
	d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), "RCP202610160003").Return(true, nil)
	d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	number, err := svc.AllocateDaily(context.Background(), nil, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^RCP202610160003[1-9][0-9]$`), number)
}

func TestReceiptService_AllocateDaily_Fallback(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 5, 7, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(d deps)
		want      string
		wantErr   bool
	}{
		{
			name: "malformed stored receipt falls back to timestamp",
			setupMock: func(d deps) {
				d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("RCP20261016ABCD", nil)
				d.transactor.EXPECT().RollbackToSavepoint(gomock.Any(), gomock.Any(), "daily_receipt").Return(nil)
				d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), "RCP20261016090507").Return(false, nil)
			},
			want: "RCP20261016090507",
		},
		{
			name: "counter failure falls back to timestamp",
			setupMock: func(d deps) {
				d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
				d.receiptRepo.EXPECT().NextDailyTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
				d.transactor.EXPECT().RollbackToSavepoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), "RCP20261016090507").Return(false, nil)
			},
			want: "RCP20261016090507",
		},
		{
			name: "suffix collision and taken timestamp is a generation failure",
			setupMock: func(d deps) {
				d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
				d.receiptRepo.EXPECT().NextDailyTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
				d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
				d.transactor.EXPECT().RollbackToSavepoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "sequence exhausted",
			setupMock: func(d deps) {
				d.guestRepo.EXPECT().LatestReceiptWithPrefix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("RCP202610169999", nil)
				d.receiptRepo.EXPECT().NextDailyTx(gomock.Any(), gomock.Any(), gomock.Any(), 10000).Return(10000, nil)
				d.transactor.EXPECT().RollbackToSavepoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.guestRepo.EXPECT().ReceiptExists(gomock.Any(), gomock.Any(), "RCP20261016090507").Return(false, nil)
			},
			want: "RCP20261016090507",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			d.transactor.EXPECT().Savepoint(gomock.Any(), gomock.Any(), "daily_receipt").Return(nil)
			tt.setupMock(d)

			number, err := svc.AllocateDaily(context.Background(), nil, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.CategoryGeneration))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, number)
		})
	}
}

func TestReceiptService_AllocateGlobal(t *testing.T) {
	t.Run("pads to six digits", func(t *testing.T) {
		svc, d := setup(t)
		d.receiptRepo.EXPECT().NextGlobal(gomock.Any()).Return(int64(1001), nil)

		number, err := svc.AllocateGlobal(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "001001", number)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, d := setup(t)
		d.receiptRepo.EXPECT().NextGlobal(gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := svc.AllocateGlobal(context.Background())

		assert.True(t, failure.Is(err, failure.CategoryGeneration))
	})
}

func checkedIn(receipt string) guestModel.Guest {
	guest := guestModel.Guest{ID: 7, FullName: "Shiv Kumar", RoomNumber: 12, CheckInDone: true}
	if receipt != "" {
		guest.ReceiptNumber = &receipt
	}

	return guest
}

func TestReceiptService_IssueFormal(t *testing.T) {
	t.Run("issues a new number", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(""), nil)
		runTx(d)
		d.receiptRepo.EXPECT().NextGlobalTx(gomock.Any(), gomock.Any()).Return(int64(1001), nil)
		d.guestRepo.EXPECT().SetReceiptNumberTx(gomock.Any(), gomock.Any(), int64(7), "001001", gomock.Any()).Return(true, nil)
		allowBackground(d)

		res, err := svc.IssueFormal(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "001001", res.ReceiptNumber)
		assert.False(t, res.AlreadyIssued)
		assert.Equal(t, "/v1/guests/7/receipt.pdf", res.DownloadPath)
	})

	t.Run("is idempotent", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn("001001"), nil).Times(2)

		first, err := svc.IssueFormal(context.Background(), 7)
		require.NoError(t, err)

		second, err := svc.IssueFormal(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "001001", second.ReceiptNumber)
		assert.True(t, second.AlreadyIssued)
	})

	t.Run("concurrent issuer wins", func(t *testing.T) {
		svc, d := setup(t)

		gomock.InOrder(
			d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(""), nil),
			d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn("001005"), nil),
		)
		runTx(d)
		d.receiptRepo.EXPECT().NextGlobalTx(gomock.Any(), gomock.Any()).Return(int64(1006), nil)
		d.guestRepo.EXPECT().SetReceiptNumberTx(gomock.Any(), gomock.Any(), int64(7), "001006", gomock.Any()).Return(false, nil)

		res, err := svc.IssueFormal(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "001005", res.ReceiptNumber)
		assert.True(t, res.AlreadyIssued)
	})

	t.Run("missing guest", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)

		_, err := svc.IssueFormal(context.Background(), 7)

		assert.True(t, failure.Is(err, failure.CategoryNotFound))
		assert.Equal(t, "guest not found", err.Error())
	})

	t.Run("check-in not completed", func(t *testing.T) {
		svc, d := setup(t)

		guest := checkedIn("")
		guest.CheckInDone = false
		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)

		_, err := svc.IssueFormal(context.Background(), 7)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, "receipt can only be generated after check-in is completed", err.Error())
	})

	t.Run("generation failure leaves the record untouched", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(""), nil)
		runTx(d)
		d.receiptRepo.EXPECT().NextGlobalTx(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := svc.IssueFormal(context.Background(), 7)

		assert.True(t, failure.Is(err, failure.CategoryGeneration))
	})

	t.Run("duplicate number is a conflict", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(""), nil)
		runTx(d)
		d.receiptRepo.EXPECT().NextGlobalTx(gomock.Any(), gomock.Any()).Return(int64(1001), nil)
		d.guestRepo.EXPECT().SetReceiptNumberTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, &pq.Error{Code: "23505"})

		_, err := svc.IssueFormal(context.Background(), 7)

		assert.True(t, failure.Is(err, failure.CategoryConflict))
	})
}

func TestReceiptService_Counter(t *testing.T) {
	svc, d := setup(t)

	d.receiptRepo.EXPECT().Current(gomock.Any()).Return(model.Counter{ID: 1, CurrentNumber: 1042}, nil)

	res, err := svc.Counter(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1042), res.CurrentNumber)
}

func TestReceiptService_Render(t *testing.T) {
	t.Run("renders the stored receipt", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn("RCP202610160001"), nil)
		d.document.EXPECT().Receipt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, view guestDto.ReceiptView) ([]byte, error) {
				assert.Equal(t, "Aggarwal Bhawan", view.PropertyName)
				assert.Equal(t, "RCP202610160001", view.ReceiptNumber)

				return []byte("%PDF-1.3"), nil
			})

		file, err := svc.Render(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "receipt_RCP202610160001.pdf", file.FileName)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.Equal(t, []byte("%PDF-1.3"), file.Data)
	})

	t.Run("guest without receipt", func(t *testing.T) {
		svc, d := setup(t)

		d.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn(""), nil)

		_, err := svc.Render(context.Background(), 7)

		assert.True(t, failure.Is(err, failure.CategoryNotFound))
	})
}
