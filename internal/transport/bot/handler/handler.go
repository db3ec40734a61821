package handler

import (
	"context"
	"io"
	"os"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/service/conversation"
	"gift_bot/internal/domain/value"
)

type Users interface {
	Get(ctx context.Context, telegramID int64) (*entity.User, error)
	RegisterContact(ctx context.Context, telegramID int64, phone, username string) (*entity.User, error)
	SetName(ctx context.Context, telegramID int64, name string) (*entity.User, error)
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)
	PromoteByUsername(ctx context.Context, actorID int64, username string) (*entity.User, error)
}

type Matcher interface {
	Match(ctx context.Context, criteria value.Criteria) (entity.CategorizedGifts, error)
}

type Recorder interface {
	Record(ctx context.Context, userID int64, criteria value.Criteria, groups entity.CategorizedGifts) (*entity.Selection, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Selection, error)
	Get(ctx context.Context, id int64) (*entity.Selection, error)
	Gifts(ctx context.Context, selectionID int64) (entity.CategorizedGifts, error)
}

type Catalog interface {
	Get(ctx context.Context, id int64) (*entity.Gift, error)
	List(ctx context.Context, page int) (catalog.Page, error)
	Stats(ctx context.Context) (entity.CatalogStats, error)
}

// Importer принимает файл каталога: грузит сразу или ставит в очередь.
type Importer interface {
	Submit(ctx context.Context, filename string, r io.Reader) (entity.ImportOutcome, error)
}

type Images interface {
	Open(name string) (*os.File, bool)
}

type Handler struct {
	users    Users
	sessions conversation.Store
	matcher  Matcher
	recorder Recorder
	catalog  Catalog
	importer Importer
	images   Images
}

func New(
	users Users,
	sessions conversation.Store,
	matcher Matcher,
	recorder Recorder,
	catalog Catalog,
	importer Importer,
	images Images,
) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		matcher:  matcher,
		recorder: recorder,
		catalog:  catalog,
		importer: importer,
		images:   images,
	}
}
