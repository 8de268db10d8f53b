package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/scheduler"
	pkgResponse "personal-task-scheduler/pkg/response"
	pkgTelegram "personal-task-scheduler/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds,
// while the analysis pipeline (LLM call) can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races
	// on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled as soon
		// as the 200 goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong, please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sc := scopeOf(msg)
	chatID := msg.Chat.ID

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(chatID,
			"👋 Welcome to *Personal Task Scheduler*!\n\nDescribe a task in plain words and I will suggest a time slot for it.\n\n_Example: \"prepare the quarterly report by Friday\"_\n\nCommands: /today /confirm /back /cancel /help",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(chatID,
			"*How it works:*\n\n1. Describe a task, e.g. `review the design doc tomorrow`\n2. Pick a day from the keyboard\n3. Pick a free time slot\n4. /confirm to book it\n\n/back returns to day selection, /cancel aborts, /today shows today's plan.",
			"Markdown",
		)
	case "/today":
		return h.sendToday(ctx, sc, chatID)
	case "/confirm":
		return h.confirm(ctx, sc, chatID)
	case "/back":
		return h.back(ctx, sc, chatID)
	case "/cancel":
		return h.cancel(ctx, sc, chatID)
	}

	// A date reply picks a day, a time reply picks a slot, anything else
	// starts scheduling a new task.
	if date, ok := parseDayReply(msg.Text); ok {
		return h.selectDay(ctx, sc, chatID, date)
	}
	if hour, minute, ok := parseTimeReply(msg.Text); ok {
		return h.selectTime(ctx, sc, chatID, hour, minute)
	}

	return h.schedule(ctx, sc, chatID, msg.Text)
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}

func (h *handler) schedule(ctx context.Context, sc model.Scope, chatID int64, text string) error {
	out, err := h.uc.Schedule(ctx, sc, schedule.ScheduleInput{Description: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Schedule failed: %v", err)
		return h.bot.SendMessage(chatID, "I could not analyze that task, please try again.")
	}

	h.forgetGrid(chatID)

	reply := formatAnalysis(out)
	return h.bot.SendKeyboard(chatID, reply, dayKeyboard(out.DayOptions))
}

func (h *handler) selectDay(ctx context.Context, sc model.Scope, chatID int64, date time.Time) error {
	out, err := h.uc.SelectDay(ctx, sc, date)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	duration := scheduler.DefaultStepMinutes
	if len(out.Slots) > 0 {
		duration = int(out.Slots[0].Slot.Duration().Minutes())
	}
	h.rememberGrid(chatID, gridContext{date: out.Date, durationMinutes: duration})

	rows := timeKeyboard(out.Slots)
	if len(rows) == 0 {
		return h.bot.SendMessage(chatID, fmt.Sprintf("No free slots on %s. Pick another day or /cancel.", out.Date.Format(dayFormat)))
	}

	return h.bot.SendKeyboard(chatID, formatDayGrid(out), rows)
}

func (h *handler) selectTime(ctx context.Context, sc model.Scope, chatID int64, hour, minute int) error {
	gc, ok := h.gridFor(chatID)
	if !ok {
		return h.bot.SendMessage(chatID, "Pick a day first, or describe a task to schedule.")
	}

	slot, err := model.SlotAt(gc.date, hour, minute, gc.durationMinutes)
	if err != nil {
		return h.bot.SendMessage(chatID, "That time does not fit in the day, please pick another slot.")
	}

	out, err := h.uc.SelectTime(ctx, sc, slot)
	if err != nil {
		if errors.Is(err, scheduler.ErrSlotTaken) {
			return h.bot.SendMessage(chatID, "⛔ That slot is already taken, please pick another one.")
		}
		return h.replyError(ctx, chatID, err)
	}

	return h.bot.SendMessage(chatID, fmt.Sprintf("Holding %s. /confirm to book it, /back to pick another day, /cancel to abort.", formatSlot(out.Pending)))
}

func (h *handler) confirm(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.Confirm(ctx, sc)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	h.forgetGrid(chatID)
	return h.bot.SendMessageRemoveKeyboard(chatID,
		fmt.Sprintf("✅ Booked: %s at %s", out.Task.Task.Description, formatSlot(out.Task.Slot)))
}

func (h *handler) back(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.Back(ctx, sc)
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	h.forgetGrid(chatID)
	return h.bot.SendKeyboard(chatID, "Pick a day:", dayKeyboard(out.DayOptions))
}

func (h *handler) cancel(ctx context.Context, sc model.Scope, chatID int64) error {
	if err := h.uc.Cancel(ctx, sc); err != nil {
		return h.replyError(ctx, chatID, err)
	}

	h.forgetGrid(chatID)
	return h.bot.SendMessageRemoveKeyboard(chatID, "Cancelled. Nothing was booked.")
}

func (h *handler) sendToday(ctx context.Context, sc model.Scope, chatID int64) error {
	today := model.DateOf(time.Now())
	out, err := h.uc.List(ctx, sc, schedule.ListInput{Date: &today})
	if err != nil {
		return h.replyError(ctx, chatID, err)
	}

	if out.Count == 0 {
		return h.bot.SendMessage(chatID, "Nothing scheduled for today.")
	}
	return h.bot.SendMessageWithMode(chatID, formatTaskList(out.Tasks), "Markdown")
}

// replyError sends a user-facing message for expected errors and logs the
// rest.
func (h *handler) replyError(ctx context.Context, chatID int64, err error) error {
	switch {
	case errors.Is(err, schedule.ErrNoActiveSession):
		return h.bot.SendMessage(chatID, "No scheduling in progress. Describe a task to start.")
	case errors.Is(err, scheduler.ErrInvalidTransition):
		return h.bot.SendMessage(chatID, "That does not fit the current step. /help shows the flow.")
	default:
		h.l.Errorf(ctx, "telegram handler: usecase error: %v", err)
		return h.bot.SendMessage(chatID, "Something went wrong, please try again.")
	}
}
