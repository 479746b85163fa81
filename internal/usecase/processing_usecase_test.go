package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/usecase"
	"github.com/iho/txengine/internal/usecase/mocks"
)

func TestProcessingUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	idGen := mocks.NewMockIDGenerator(ctrl)
	exporter := mocks.NewMockSummaryExporter(ctrl)

	idGen.EXPECT().Generate().Return("01JRUNID")
	exporter.EXPECT().Name().Return("test").AnyTimes()
	exporter.EXPECT().
		Export(gomock.Any(), "01JRUNID", gomock.Len(2)).
		Return(nil)

	var logs bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	writer := &mocks.SummaryCollector{}

	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{
		Writer:    writer,
		Exporters: []usecase.SummaryExporter{exporter},
		IDGen:     idGen,
		Logger:    zerolog.New(&logs),
		Metrics:   m,
	})

	source := mocks.NewSliceEventSourceWithItems(
		mocks.SourceItem{Event: deposit(1, 1, "1.0")},
		mocks.SourceItem{Event: deposit(2, 2, "2.0")},
		mocks.SourceItem{Err: &domain.RecordError{Line: 4, Err: domain.ErrTooPrecise}},
		mocks.SourceItem{Event: withdrawal(1, 3, "5")},
		mocks.SourceItem{Event: domain.Dispute{Client: 2, Tx: 2}},
	)

	report, err := uc.Run(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "01JRUNID", report.RunID)
	assert.Equal(t, 5, report.Records)
	assert.Equal(t, 3, report.Applied)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 1, report.Malformed)
	assert.Equal(t, 2, report.Clients)

	require.Len(t, writer.Summaries, 2)
	assert.Equal(t, domain.ClientID(1), writer.Summaries[0].Client)
	assert.Equal(t, "2", writer.Summaries[1].Held.String())

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsMalformed))
	assert.Contains(t, logs.String(), `"reason":"insufficient_funds"`)
	assert.Contains(t, logs.String(), `"line":4`)
	assert.Contains(t, logs.String(), `"run_id":"01JRUNID"`)
}

func TestProcessingUseCase_RunFatalSourceError(t *testing.T) {
	writer := &mocks.SummaryCollector{}
	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{
		Writer: writer,
		Logger: zerolog.Nop(),
	})

	readErr := errors.New("disk gone")
	source := mocks.NewSliceEventSourceWithItems(
		mocks.SourceItem{Event: deposit(1, 1, "1")},
		mocks.SourceItem{Err: readErr},
	)

	_, err := uc.Run(context.Background(), source)
	require.ErrorIs(t, err, readErr)
	assert.Nil(t, writer.Summaries, "nothing is written after a fatal read error")
}

func TestProcessingUseCase_RunWriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockSummaryWriter(ctrl)
	exporter := mocks.NewMockSummaryExporter(ctrl)

	writeErr := errors.New("broken pipe")
	writer.EXPECT().Write(gomock.Any()).Return(writeErr)
	// Exporters never run when the report could not be written.
	exporter.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{
		Writer:    writer,
		Exporters: []usecase.SummaryExporter{exporter},
		Logger:    zerolog.Nop(),
	})

	_, err := uc.Run(context.Background(), mocks.NewSliceEventSource(deposit(1, 1, "1")))
	require.ErrorIs(t, err, writeErr)
}

func TestProcessingUseCase_RunExportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockSummaryExporter(ctrl)
	healthy := mocks.NewMockSummaryExporter(ctrl)

	exportErr := errors.New("connection refused")
	failing.EXPECT().Name().Return("postgres").AnyTimes()
	failing.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return(exportErr)
	healthy.EXPECT().Name().Return("redis").AnyTimes()
	healthy.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	m := metrics.New(prometheus.NewRegistry())
	writer := &mocks.SummaryCollector{}
	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{
		Writer:    writer,
		Exporters: []usecase.SummaryExporter{failing, healthy},
		Logger:    zerolog.Nop(),
		Metrics:   m,
	})

	_, err := uc.Run(context.Background(), mocks.NewSliceEventSource(deposit(1, 1, "1")))
	require.ErrorIs(t, err, exportErr)
	assert.Contains(t, err.Error(), "export to postgres")
	assert.Len(t, writer.Summaries, 1, "report is written before exporting")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExportErrors.WithLabelValues("postgres")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ExportErrors.WithLabelValues("redis")))
}

func TestProcessingUseCase_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{Logger: zerolog.Nop()})
	_, err := uc.Run(ctx, mocks.NewSliceEventSource(deposit(1, 1, "1")))
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessingUseCase_SharedLedger(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(usecase.LedgerConfig{})
	uc := usecase.NewProcessingUseCase(usecase.ProcessingConfig{Ledger: ledger, Logger: zerolog.Nop()})
	require.Same(t, ledger, uc.Ledger())

	_, err := uc.Run(context.Background(), mocks.NewSliceEventSource(deposit(3, 1, "7.25")))
	require.NoError(t, err)

	summary, ok := ledger.Account(3)
	require.True(t, ok)
	assert.Equal(t, "7.25", summary.Total.String())
}
