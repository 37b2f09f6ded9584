package review

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ratemypg/pkg/common"
	"ratemypg/pkg/logger"
	"ratemypg/pkg/sessions"
	"ratemypg/pkg/university"
	"ratemypg/pkg/user"
)

type ICommentRepo interface {
	ListByPG(context.Context, university.PGId) ([]*Thread, error)
	GetComment(context.Context, CommentId) (*Comment, error)
	AddComment(context.Context, *Comment) (CommentId, error)
	DeleteComment(context.Context, CommentId) error

	GetReply(context.Context, ReplyId) (*Reply, error)
	AddReply(context.Context, *Reply) (ReplyId, error)
	DeleteReply(context.Context, ReplyId) error
}

type Notifier interface {
	BroadcastEvent(eventType string, payload interface{})
}

type CommentHandler struct {
	CommentRepo ICommentRepo
	Notify      Notifier
}

func NewCommentHandler(commentRepo ICommentRepo, notify Notifier) *CommentHandler {
	return &CommentHandler{
		CommentRepo: commentRepo,
		Notify:      notify,
	}
}

func (ch *CommentHandler) commentsChanged(pgId string) {
	if ch.Notify != nil {
		ch.Notify.BroadcastEvent("comments_updated", struct {
			PGId string `json:"pgId"`
		}{pgId})
	}
}

func (ch *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pgId := mux.Vars(r)["pg_id"]
	threads, err := ch.CommentRepo.ListByPG(r.Context(), university.PGId(pgId))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comments for pg %s: %v", pgId, err)
		common.WriteMsg(w, "failed loading comments", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, threads)
}

func (ch *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pgId := mux.Vars(r)["pg_id"]

	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	req := struct {
		Text string `json:"text"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse comment body: %v", err)
		common.WriteMsg(w, "can't parse comment", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Text) {
		common.WriteMsg(w, "comment text is required", http.StatusBadRequest)
		return
	}

	comment := &Comment{
		Id:      CommentId(common.RandStringRunes(12)),
		PGId:    university.PGId(pgId),
		Author:  user.SnapshotOf(author),
		Text:    strings.TrimSpace(req.Text),
		Created: time.Now(),
	}

	if _, err := ch.CommentRepo.AddComment(r.Context(), comment); err != nil {
		logger.Log(r.Context()).Errorf("can't add comment to pg %s: %v", pgId, err)
		common.WriteMsg(w, "failed adding comment", http.StatusInternalServerError)
		return
	}

	ch.commentsChanged(pgId)
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, &Thread{
		Comment:  *comment,
		Replies:  []*Reply{},
		Mentions: Mentions(comment.Text),
	})
}

func (ch *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	pgId := vars["pg_id"]
	commentId := vars["comment_id"]

	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	comment, err := ch.CommentRepo.GetComment(r.Context(), CommentId(commentId))
	if errors.Is(err, ErrCommentNotFound) {
		common.WriteMsg(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get comment %s: %v", commentId, err)
		common.WriteMsg(w, "removing comment failed", http.StatusInternalServerError)
		return
	}

	if comment.Author.UserId != authUser.Id {
		common.WriteMsg(w, "only the author can remove the comment", http.StatusForbidden)
		return
	}

	if err := ch.CommentRepo.DeleteComment(r.Context(), CommentId(commentId)); err != nil {
		logger.Log(r.Context()).Errorf("can't remove comment %s: %v", commentId, err)
		common.WriteMsg(w, "removing comment failed", http.StatusInternalServerError)
		return
	}

	ch.commentsChanged(pgId)
	common.WriteMsg(w, "success", http.StatusOK)
}

func (ch *CommentHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	pgId := vars["pg_id"]
	commentId := vars["comment_id"]

	replier, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	req := struct {
		Text string `json:"text"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse reply body: %v", err)
		common.WriteMsg(w, "can't parse reply", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Text) {
		common.WriteMsg(w, "reply text is required", http.StatusBadRequest)
		return
	}

	if _, err := ch.CommentRepo.GetComment(r.Context(), CommentId(commentId)); err != nil {
		common.WriteMsg(w, "comment not found", http.StatusNotFound)
		return
	}

	reply := &Reply{
		Id:        ReplyId(common.RandStringRunes(12)),
		CommentId: CommentId(commentId),
		Author:    user.SnapshotOf(replier),
		Text:      strings.TrimSpace(req.Text),
		Created:   time.Now(),
	}

	if _, err := ch.CommentRepo.AddReply(r.Context(), reply); err != nil {
		logger.Log(r.Context()).Errorf("can't add reply to comment %s: %v", commentId, err)
		common.WriteMsg(w, "failed adding reply", http.StatusInternalServerError)
		return
	}

	ch.commentsChanged(pgId)
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, reply)
}

func (ch *CommentHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	pgId := vars["pg_id"]
	replyId := vars["reply_id"]

	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	reply, err := ch.CommentRepo.GetReply(r.Context(), ReplyId(replyId))
	if errors.Is(err, ErrReplyNotFound) {
		common.WriteMsg(w, "reply not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get reply %s: %v", replyId, err)
		common.WriteMsg(w, "removing reply failed", http.StatusInternalServerError)
		return
	}

	if reply.Author.UserId != authUser.Id {
		common.WriteMsg(w, "only the author can remove the reply", http.StatusForbidden)
		return
	}

	if err := ch.CommentRepo.DeleteReply(r.Context(), ReplyId(replyId)); err != nil {
		logger.Log(r.Context()).Errorf("can't remove reply %s: %v", replyId, err)
		common.WriteMsg(w, "removing reply failed", http.StatusInternalServerError)
		return
	}

	ch.commentsChanged(pgId)
	common.WriteMsg(w, "success", http.StatusOK)
}
