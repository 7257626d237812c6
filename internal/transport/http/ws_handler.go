package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/domain"
)

// WSHandler drives one quiz attempt per websocket connection. The session is
// connection-local: two tabs for the same module run two independent attempts
// and each appends its own result row on finish.
type WSHandler struct {
	quizzes  *app.QuizService
	access   *app.AccessService // nil disables the premium gate
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(quizzes *app.QuizService, access *app.AccessService, log *zap.Logger) *WSHandler {
	return &WSHandler{
		quizzes: quizzes,
		access:  access,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// questionView is the client's picture of the current question plus the
// per-index answered/checked flags that drive the progress dots.
type questionView struct {
	Index        int      `json:"index"`
	Total        int      `json:"total"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	Selected     int      `json:"selected"` // -1 when unanswered
	Checked      bool     `json:"checked"`
	CorrectIndex *int     `json:"correctIndex,omitempty"` // revealed only after check
	Answered     []bool   `json:"answered"`
	CheckedAll   []bool   `json:"checkedAll"`
	BestScore    *int     `json:"bestScore,omitempty"`
}

type reviewEntry struct {
	Prompt        string `json:"prompt"`
	Selected      int    `json:"selected"`
	CorrectIndex  int    `json:"correctIndex"`
	CorrectOption string `json:"correctOption"`
	Correct       bool   `json:"correct"`
}

type finishedView struct {
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	Percentage int           `json:"percentage"`
	Passed     bool          `json:"passed"`
	Saved      bool          `json:"saved"`
	BestScore  *int          `json:"bestScore,omitempty"`
	Review     []reviewEntry `json:"review"`
}

// ServeWS upgrades the request and runs the attempt loop until the client
// disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	moduleID := r.URL.Query().Get("moduleId")
	userID := r.URL.Query().Get("userId")
	loc := domain.ParseLocale(r.URL.Query().Get("locale"))
	if moduleID == "" {
		http.Error(w, "missing moduleId", http.StatusBadRequest)
		return
	}

	if h.access != nil && userID != "" {
		ok, err := h.access.CanAccess(r.Context(), userID)
		if err != nil {
			http.Error(w, "subscription check failed", http.StatusServiceUnavailable)
			return
		}
		if !ok {
			http.Error(w, "active subscription required", http.StatusForbidden)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	started, err := h.quizzes.StartSession(r.Context(), userID, moduleID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	session := started.Session
	bestScore := started.BestScore

	send := func(msg any) bool {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Debug("ws write failed", zap.Error(err))
			return false
		}
		return true
	}

	if !send(outboundMessage[questionView]{Type: "question", Payload: h.view(session, loc, bestScore)}) {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}})
				continue
			}
			if err := session.Select(payload.OptionIndex); err != nil {
				send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			send(outboundMessage[questionView]{Type: "question", Payload: h.view(session, loc, bestScore)})

		case "check":
			outcome, err := session.Check()
			if err != nil {
				send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			send(outboundMessage[app.CheckOutcome]{Type: "checked", Payload: outcome})
			send(outboundMessage[questionView]{Type: "question", Payload: h.view(session, loc, bestScore)})

		case "next":
			if err := session.Next(); err != nil {
				send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			send(outboundMessage[questionView]{Type: "question", Payload: h.view(session, loc, bestScore)})

		case "finish":
			attempt, err := h.quizzes.FinishSession(r.Context(), userID, session)
			if err != nil {
				send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
				continue
			}
			if attempt.BestScore != nil {
				bestScore = attempt.BestScore
			}
			send(outboundMessage[finishedView]{Type: "finished", Payload: h.finishedView(session, loc, attempt)})

		case "retry":
			session.Retry()
			send(outboundMessage[questionView]{Type: "question", Payload: h.view(session, loc, bestScore)})

		default:
			send(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}
}

func (h *WSHandler) view(s *app.Session, loc domain.Locale, best *int) questionView {
	module := s.Module()
	i := s.Current()
	text := module.Questions[i].Localized(loc)

	answered := make([]bool, len(module.Questions))
	checkedAll := make([]bool, len(module.Questions))
	for j := range module.Questions {
		answered[j] = s.Answer(j) != app.NoAnswer
		checkedAll[j] = s.IsChecked(j)
	}

	v := questionView{
		Index:      i,
		Total:      len(module.Questions),
		Prompt:     text.Prompt,
		Options:    text.Options,
		Selected:   s.Answer(i),
		Checked:    s.IsChecked(i),
		Answered:   answered,
		CheckedAll: checkedAll,
		BestScore:  best,
	}
	if v.Checked {
		ci := module.Questions[i].CorrectIndex
		v.CorrectIndex = &ci
	}
	return v
}

func (h *WSHandler) finishedView(s *app.Session, loc domain.Locale, attempt app.FinishedAttempt) finishedView {
	module := s.Module()
	review := make([]reviewEntry, 0, len(module.Questions))
	for i, q := range module.Questions {
		text := q.Localized(loc)
		entry := reviewEntry{
			Prompt:       text.Prompt,
			Selected:     s.Answer(i),
			CorrectIndex: q.CorrectIndex,
			Correct:      s.Answer(i) == q.CorrectIndex,
		}
		if q.CorrectIndex < len(text.Options) {
			entry.CorrectOption = text.Options[q.CorrectIndex]
		}
		review = append(review, entry)
	}
	return finishedView{
		Score:      attempt.Result.Score,
		Total:      attempt.Result.Total,
		Percentage: attempt.Result.Percentage,
		Passed:     attempt.Result.Passed,
		Saved:      attempt.Saved,
		BestScore:  attempt.BestScore,
		Review:     review,
	}
}
