package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SubmitInput names what to submit. Operator and SecondaryOperator are the
// free-text names printed in the report's operator columns.
type SubmitInput struct {
	Track             Track
	BrandID           string
	DistributorID     string
	Operator          string
	SecondaryOperator string
}

// ApprovalService runs the approval submission workflow.
type ApprovalService struct {
	data   DataService
	docs   DocumentComposer
	board  *ApprovalBoard
	now    func() time.Time
	report func(ReportData) ([]byte, error)
	logger zerolog.Logger
}

// ApprovalOption customises an ApprovalService.
type ApprovalOption func(*ApprovalService)

// WithClock overrides the clock used to stamp submissions.
func WithClock(now func() time.Time) ApprovalOption {
	return func(s *ApprovalService) { s.now = now }
}

// WithReportGenerator overrides the spreadsheet builder.
func WithReportGenerator(fn func(ReportData) ([]byte, error)) ApprovalOption {
	return func(s *ApprovalService) { s.report = fn }
}

// WithLogger sets the logger used for workflow events.
func WithLogger(l zerolog.Logger) ApprovalOption {
	return func(s *ApprovalService) { s.logger = l }
}

// NewApprovalService wires the workflow to its collaborators.
func NewApprovalService(data DataService, docs DocumentComposer, board *ApprovalBoard, opts ...ApprovalOption) *ApprovalService {
	s := &ApprovalService{
		data:   data,
		docs:   docs,
		board:  board,
		now:    time.Now,
		report: GenerateStoreReport,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board exposes the view model the service updates.
func (s *ApprovalService) Board() *ApprovalBoard {
	return s.board
}

// Refresh reloads the board from the vendor's approval records.
func (s *ApprovalService) Refresh(ctx context.Context, vendorID string) error {
	records, err := s.data.ListApprovals(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("list approvals: %w", err)
	}
	s.board.Load(vendorID, records)
	return nil
}

// Submit gathers the pair's stores, generates the PDF and the spreadsheet in
// parallel and posts one approval request. The board is only updated when
// the request was accepted.
func (s *ApprovalService) Submit(ctx context.Context, in SubmitInput, user CurrentUser) (*ApprovalRequest, error) {
	key := PairKey{VendorID: user.ID, BrandID: in.BrandID, DistributorID: in.DistributorID}
	if !s.board.TryBegin(key, in.Track) {
		return nil, ErrSubmissionInProgress
	}
	defer s.board.End(key, in.Track)

	l := s.logger.With().
		Str("track", string(in.Track)).
		Str("brand", in.BrandID).
		Str("distributor", in.DistributorID).
		Str("vendor", user.ID).
		Logger()

	stores, err := s.data.ListStores(ctx, user.ID, in.BrandID, in.DistributorID)
	if err != nil {
		l.Error().Err(err).Msg("approval: could not list stores")
		return nil, fmt.Errorf("%w: list stores: %w", ErrSubmissionFailed, err)
	}
	if len(stores) == 0 {
		return nil, ErrNoStoresFound
	}

	stores = slices.Clone(stores)
	if in.Track == TrackAfter {
		stores = StoresWithAfterImage(stores)
		if len(stores) == 0 {
			return nil, ErrNoAfterImagesFound
		}
	}

	SortBySerial(stores)
	for i := range stores {
		stores[i].SubmittedBy = user.DisplayName
	}

	pdf, excel, err := s.generate(ctx, in, stores, l)
	if err != nil {
		return nil, err
	}

	first := stores[0]
	req := ApprovalRequest{
		RequestID:       uuid.NewString(),
		BrandID:         in.BrandID,
		DistributorID:   in.DistributorID,
		VendorID:        user.ID,
		StoreID:         first.ID,
		Type:            in.Track.ApprovalType(),
		PDFPayload:      base64.StdEncoding.EncodeToString(pdf),
		BrandName:       first.BrandName,
		DistributorName: first.DistributorName,
		SubmittedBy:     user.DisplayName,
	}
	if excel != nil {
		req.ExcelPayload = base64.StdEncoding.EncodeToString(excel)
	}

	ack, err := s.data.SubmitApproval(ctx, req)
	if err != nil {
		l.Error().Err(err).Str("request_id", req.RequestID).Msg("approval: submit failed")
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.board.MarkSubmitted(key, in.Track, s.now())
	l.Info().
		Str("request_id", req.RequestID).
		Str("approval_id", ack.ID).
		Int("stores", len(stores)).
		Msg("approval: submitted")

	return &req, nil
}

// generate runs document and spreadsheet generation concurrently and waits
// for both. A document failure is returned through the group; a spreadsheet
// failure stays local and only leaves excel nil.
func (s *ApprovalService) generate(ctx context.Context, in SubmitInput, stores []StoreRecord, l zerolog.Logger) (pdf, excel []byte, err error) {
	var excelErr error
	var g errgroup.Group

	g.Go(func() (err error) {
		defer recoverInto(&err)
		pdf, err = s.docs.ComposeDocument(ctx, stores, in.Track == TrackAfter)
		return err
	})
	g.Go(func() error {
		defer recoverInto(&excelErr)
		rows := BuildReportRows(stores, in.Operator, in.SecondaryOperator)
		excel, excelErr = s.report(ReportData{Headers: HeadersFor(in.Track), Rows: rows})
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("approval: document generation failed")
		return nil, nil, fmt.Errorf("%w: %w", ErrDocumentGenerationFailed, err)
	}
	if excelErr != nil {
		l.Warn().Err(fmt.Errorf("%w: %w", ErrSpreadsheetGenerationFailed, excelErr)).
			Msg("approval: continuing without spreadsheet")
		excel = nil
	}

	l.Debug().
		Str("pdf_size", humanize.Bytes(uint64(len(pdf)))).
		Str("excel_size", humanize.Bytes(uint64(len(excel)))).
		Msg("approval: artifacts ready")

	return pdf, excel, nil
}

// StoresWithAfterImage keeps the stores that carry an after-execution image.
func StoresWithAfterImage(stores []StoreRecord) []StoreRecord {
	out := make([]StoreRecord, 0, len(stores))
	for _, s := range stores {
		if strings.TrimSpace(s.AfterImage) != "" {
			out = append(out, s)
		}
	}
	return out
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic: %v", r)
	}
}
