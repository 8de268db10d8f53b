package telegram

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/schedule"
	pkgLog "personal-task-scheduler/pkg/log"
	pkgTelegram "personal-task-scheduler/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// gridContext remembers the day and slot length last offered to a chat,
// so a bare "09:00" reply can be turned back into a full slot.
type gridContext struct {
	date            time.Time
	durationMinutes int
}

type handler struct {
	l   pkgLog.Logger
	uc  schedule.UseCase
	bot *pkgTelegram.Bot

	mu    sync.Mutex
	grids map[int64]gridContext
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc schedule.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		bot:   bot,
		grids: make(map[int64]gridContext),
	}
}

func (h *handler) rememberGrid(chatID int64, ctx gridContext) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.grids[chatID] = ctx
}

func (h *handler) gridFor(chatID int64) (gridContext, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	gc, ok := h.grids[chatID]
	return gc, ok
}

func (h *handler) forgetGrid(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.grids, chatID)
}
