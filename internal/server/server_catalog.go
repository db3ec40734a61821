package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"gift_bot/internal/domain/entity"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/httpx/reply"
)

const (
	uploadField   = "file"
	maxUploadSize = 32 << 20
)

type catalogService interface {
	Get(ctx context.Context, id int64) (*entity.Gift, error)
	Stats(ctx context.Context) (entity.CatalogStats, error)
}

type catalogImporter interface {
	Submit(ctx context.Context, filename string, r io.Reader) (entity.ImportOutcome, error)
}

type CatalogServer struct {
	catalogService  catalogService
	catalogImporter catalogImporter
}

func NewCatalogServer(catalogService catalogService, catalogImporter catalogImporter) CatalogServer {
	return CatalogServer{
		catalogService:  catalogService,
		catalogImporter: catalogImporter,
	}
}

func (s CatalogServer) getV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseID(r.PathValue("id"), errcodes.InvalidGiftID)
	if err != nil {
		return err
	}

	gift, err := s.catalogService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGift(*gift))

	return nil
}

func (s CatalogServer) getV1CatalogStats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	stats, err := s.catalogService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.Stats: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCatalogStats(stats))

	return nil
}

func (s CatalogServer) postV1CatalogImport(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("r.FormFile: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("multipart field \"file\" is required"),
		)
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		return failure.NewInvalidArgumentError(
			"unexpected file extension: "+header.Filename,
			failure.WithCode(errcodes.InvalidSpreadsheet),
			failure.WithDescription("only .xlsx files are accepted"),
		)
	}

	outcome, err := s.catalogImporter.Submit(ctx, header.Filename, file)
	if err != nil {
		return fmt.Errorf("catalogImporter.Submit: %w", err)
	}

	status := http.StatusOK
	if outcome.Queued {
		status = http.StatusAccepted
	}

	reply.JSON(ctx, w, status, newRESTImportResult(outcome))

	return nil
}

func parseID(raw string, code failure.ErrorCode) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.NewInvalidArgumentError(
			"invalid id: "+raw,
			failure.WithCode(code),
			failure.WithDescription("id must be a positive integer"),
		)
	}

	return id, nil
}
