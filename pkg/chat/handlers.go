package chat

import (
	"net/http"
	"strings"
	"time"

	"ratemypg/pkg/common"
	"ratemypg/pkg/logger"
	"ratemypg/pkg/sessions"
	"ratemypg/pkg/user"
)

type Notifier interface {
	BroadcastEvent(eventType string, payload interface{})
}

type MessageHandler struct {
	Buffer *Buffer
	Notify Notifier
}

func NewMessageHandler(buffer *Buffer, notify Notifier) *MessageHandler {
	return &MessageHandler{
		Buffer: buffer,
		Notify: notify,
	}
}

func (mh *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, err := sessions.GetAuthUser(r.Context()); err != nil {
		common.WriteMsg(w, "please sign in to chat with others", http.StatusUnauthorized)
		return
	}

	messages, err := mh.Buffer.Load(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load chat messages: %v", err)
		common.WriteMsg(w, "failed loading messages", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, messages)
}

func (mh *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sender, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in to chat with others", http.StatusUnauthorized)
		return
	}

	req := struct {
		Text string `json:"text"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse message body: %v", err)
		common.WriteMsg(w, "can't parse message", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Text) {
		common.WriteMsg(w, "message text is required", http.StatusBadRequest)
		return
	}

	msg := &Message{
		Id:      MessageId(common.RandStringRunes(12)),
		Author:  user.SnapshotOf(sender),
		Text:    strings.TrimSpace(req.Text),
		Created: time.Now(),
	}

	if err := mh.Buffer.Append(r.Context(), msg); err != nil {
		logger.Log(r.Context()).Errorf("can't send chat message: %v", err)
		common.WriteMsg(w, "failed sending message", http.StatusInternalServerError)
		return
	}

	if mh.Notify != nil {
		mh.Notify.BroadcastEvent("chat_message", msg)
	}

	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, msg)
}
