package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/parse"
	"github.com/spendlens/spendlens/internal/repository"
)

type stubParser struct {
	rec       parse.Record
	err       error
	gotFormat constants.Format
}

func (s *stubParser) Parse(_ context.Context, _ []byte, format constants.Format) (parse.Record, error) {
	s.gotFormat = format
	return s.rec, s.err
}

type IngestServiceTestSuite struct {
	suite.Suite
	repo   repository.ReceiptRepository
	parser *stubParser
	svc    *Service
	ctx    context.Context
}

func (s *IngestServiceTestSuite) SetupTest() {
	db, err := repository.Open(context.Background(), ":memory:", time.Second, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.repo = repository.NewReceiptRepository(db, nil)
	s.parser = &stubParser{}
	s.svc = NewService(s.parser, s.repo, nil)
	s.ctx = context.Background()
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}

func (s *IngestServiceTestSuite) TestIngestBytesStoresReceipt() {
	d := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	a := 489.56
	s.parser.rec = parse.Record{Vendor: "Global Supermart", TxDate: &d, Amount: &a, Category: "Groceries"}

	rec, err := s.svc.IngestBytes(s.ctx, "market.txt", []byte("raw"))
	s.Require().NoError(err)
	s.Equal(constants.TEXT, s.parser.gotFormat)
	s.Equal("Global Supermart", rec.Vendor)
	s.Equal("market.txt", rec.OriginalFilename)

	stored, err := s.repo.GetByID(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.InDelta(489.56, stored.Amount, 1e-9)
}

func (s *IngestServiceTestSuite) TestIngestBytesAppliesDefaults() {
	s.parser.rec = parse.Record{Vendor: "", TxDate: nil, Amount: nil, Category: ""}

	rec, err := s.svc.IngestBytes(s.ctx, "note.txt", []byte("raw"))
	s.Require().NoError(err)
	s.Equal(parse.DefaultVendor, rec.Vendor)
	s.Equal(parse.DefaultCategory, rec.Category)
	s.Zero(rec.Amount)

	today := time.Now().UTC()
	s.Equal(today.Year(), rec.TxDate.Year())
	s.Equal(today.Month(), rec.TxDate.Month())
}

func (s *IngestServiceTestSuite) TestIngestBytesUnsupportedExtension() {
	_, err := s.svc.IngestBytes(s.ctx, "receipt.docx", []byte("raw"))
	s.ErrorIs(err, common.ErrUnsupportedFormat)
}

func (s *IngestServiceTestSuite) TestIngestBytesParserErrorPropagates() {
	s.parser.err = common.NewAppError("NO_TEXT", "could not extract any meaningful text", common.ErrNoExtractableText)
	_, err := s.svc.IngestBytes(s.ctx, "blank.txt", []byte{})
	s.ErrorIs(err, common.ErrNoExtractableText)
}

func (s *IngestServiceTestSuite) TestIngestFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "cafe.txt")
	s.Require().NoError(os.WriteFile(path, []byte("Corner Cafe\nTotal: 14.25"), 0o644))

	a := 14.25
	s.parser.rec = parse.Record{Vendor: "Corner Cafe", Amount: &a, Category: "Restaurant"}

	rec, err := s.svc.IngestFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal("cafe.txt", rec.OriginalFilename)
}

func TestIngestDirectory(t *testing.T) {
	db, err := repository.Open(context.Background(), ":memory:", time.Second, nil)
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewReceiptRepository(db, nil)
	parser := &stubParser{rec: parse.Record{Vendor: "Anything"}}
	svc := NewService(parser, repo, nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.docx"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("x"), 0o644))

	results, stats, err := svc.IngestDirectory(context.Background(), dir, nil, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.EqualValues(t, 2, stats.Matched)
	require.EqualValues(t, 2, stats.Succeeded)
	require.EqualValues(t, 0, stats.Failed)

	stored, err := repo.List(context.Background(), repository.Filter{})
	require.NoError(t, err)
	require.Len(t, stored, 2)
}
