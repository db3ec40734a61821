package server

import (
	"context"
	"fmt"
	"net/http"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/httpx/reply"
	"gift_bot/pkg/httpx/req"
	"gift_bot/pkg/lox"
	"gift_bot/pkg/rest"
)

type selectionService interface {
	ListByUser(ctx context.Context, userID int64) ([]entity.Selection, error)
}

type matchService interface {
	Match(ctx context.Context, criteria value.Criteria) (entity.CategorizedGifts, error)
}

type SelectionServer struct {
	selectionService selectionService
	matchService     matchService
}

func NewSelectionServer(selectionService selectionService, matchService matchService) SelectionServer {
	return SelectionServer{
		selectionService: selectionService,
		matchService:     matchService,
	}
}

func (s SelectionServer) getV1UserSelections(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := parseID(r.PathValue("id"), errcodes.InvalidUserID)
	if err != nil {
		return err
	}

	selections, err := s.selectionService.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("selectionService.ListByUser: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(selections, newRESTSelection))

	return nil
}

// postV1Match пробный подбор без записи подборки.
func (s SelectionServer) postV1Match(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.MatchRequest
	if err := req.Read(w, r, &request); err != nil {
		return err
	}

	// неизвестный получатель не ошибка: подбор идёт без фильтра по нему
	groups, err := s.matchService.Match(ctx, newCriteria(request))
	if err != nil {
		return fmt.Errorf("matchService.Match: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(groups, newRESTMatchCategory))

	return nil
}
