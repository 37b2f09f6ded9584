package forum

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
	"ratemypg/pkg/user"
)

type IPostRepo interface {
	GetAll(context.Context) ([]*Post, error)
	GetById(context.Context, PostId) (*Post, error)
	GetByUniversity(context.Context, string) ([]*Post, error)

	Add(context.Context, *Post) (PostId, error)
	Delete(context.Context, PostId) error

	ToggleLike(context.Context, *Post, string) (bool, error)
	ToggleReplyLike(context.Context, *Post, ReplyId, string) (bool, error)

	AddReply(context.Context, PostId, *Reply) error
	DeleteReply(context.Context, PostId, ReplyId) error
}

// Notifier lets the handler tell subscribed clients that the posts
// collection changed.
type Notifier interface {
	BroadcastEvent(eventType string, payload interface{})
}

type PostHandler struct {
	PostRepo IPostRepo
	Feed     *Feed
	Notify   Notifier
}

func NewPostHandler(postRepo IPostRepo, feed *Feed, notify Notifier) *PostHandler {
	return &PostHandler{
		PostRepo: postRepo,
		Feed:     feed,
		Notify:   notify,
	}
}

// postsChanged refreshes the feed and pings live clients. Best-effort:
// the mutation already succeeded, watchers just catch up.
func (ph *PostHandler) postsChanged(ctx context.Context) {
	if ph.Feed != nil {
		if err := ph.Feed.Refresh(ctx); err != nil {
			logger.Log(ctx).Errorf("can't refresh posts feed: %v", err)
		}
	}
	if ph.Notify != nil {
		ph.Notify.BroadcastEvent("posts_updated", nil)
	}
}

func (ph *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := ph.Feed.Posts(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts from the repo: %v", err)
		common.WriteMsg(w, "failed loading posts", http.StatusInternalServerError)
		return
	}

	common.WriteRespJSON(w, posts)
}

func (ph *PostHandler) GetByUniversity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	university := mux.Vars(r)["university"]
	posts, err := ph.PostRepo.GetByUniversity(r.Context(), university)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts for university %s: %v", university, err)
		common.WriteMsg(w, "failed loading posts", http.StatusInternalServerError)
		return
	}

	SortPosts(posts)
	common.WriteRespJSON(w, posts)
}

func (ph *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := mux.Vars(r)["post_id"]
	post, err := ph.PostRepo.GetById(r.Context(), PostId(postId))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %s: %v", postId, err)
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	common.WriteRespJSON(w, post)
}

type newPostReq struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	University string   `json:"university"`
	Tags       []string `json:"tags"`
}

func (ph *PostHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	req := new(newPostReq)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse post from request body: %v", err)
		common.WriteMsg(w, "can't parse post", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Title) || common.IsBlank(req.Content) {
		common.WriteMsg(w, "title and content are required", http.StatusBadRequest)
		return
	}

	post := &Post{
		Id:         PostId(common.RandStringRunes(12)),
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		Author:     user.SnapshotOf(author),
		University: req.University,
		Created:    time.Now(),
		Likes:      []string{},
		Replies:    []Reply{},
		Tags:       req.Tags,
	}

	if _, err := ph.PostRepo.Add(r.Context(), post); err != nil {
		logger.Log(r.Context()).Errorf("can't add post to the repo: %v", err)
		common.WriteMsg(w, "failed adding post", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, post)
}

func (ph *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := mux.Vars(r)["post_id"]

	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	post, err := ph.PostRepo.GetById(r.Context(), PostId(postId))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't find the post: %v", err)
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	if post.Author.UserId != authUser.Id {
		common.WriteMsg(w, "only the author can remove the post", http.StatusForbidden)
		return
	}

	if err := ph.PostRepo.Delete(r.Context(), PostId(postId)); err != nil {
		logger.Log(r.Context()).Errorf("can't remove post: %v", err)
		common.WriteMsg(w, "removing post failed", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	common.WriteMsg(w, "success", http.StatusOK)
}

func (ph *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := mux.Vars(r)["post_id"]

	liker, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	post, err := ph.PostRepo.GetById(r.Context(), PostId(postId))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %s: %v", postId, err)
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	liked, err := ph.PostRepo.ToggleLike(r.Context(), post, liker.Id)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't toggle like for post %s: %v", postId, err)
		common.WriteMsg(w, "liking failed", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	common.WriteRespJSON(w, struct {
		Liked bool  `json:"liked"`
		Post  *Post `json:"post"`
	}{liked, post})
}

func (ph *PostHandler) LikeReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	postId := vars["post_id"]
	replyId := vars["reply_id"]

	liker, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	post, err := ph.PostRepo.GetById(r.Context(), PostId(postId))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %s: %v", postId, err)
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	liked, err := ph.PostRepo.ToggleReplyLike(r.Context(), post, ReplyId(replyId), liker.Id)
	if errors.Is(err, ErrReplyNotFound) {
		common.WriteMsg(w, "reply not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't toggle like for reply %s of post %s: %v", replyId, postId, err)
		common.WriteMsg(w, "liking failed", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	common.WriteRespJSON(w, struct {
		Liked bool  `json:"liked"`
		Post  *Post `json:"post"`
	}{liked, post})
}

func (ph *PostHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := mux.Vars(r)["post_id"]

	replier, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	req := struct {
		Content string `json:"content"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil {
		logger.Log(r.Context()).Errorf("can't parse reply body: %v", err)
		common.WriteMsg(w, "can't parse reply", http.StatusBadRequest)
		return
	}

	if common.IsBlank(req.Content) {
		common.WriteMsg(w, "reply content is required", http.StatusBadRequest)
		return
	}

	if _, err := ph.PostRepo.GetById(r.Context(), PostId(postId)); err != nil {
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	reply := &Reply{
		Id:      ReplyId(common.RandStringRunes(12)),
		Author:  user.SnapshotOf(replier),
		Content: strings.TrimSpace(req.Content),
		Created: time.Now(),
		Likes:   []string{},
	}

	if err := ph.PostRepo.AddReply(r.Context(), PostId(postId), reply); err != nil {
		logger.Log(r.Context()).Errorf("can't add reply to post %s: %v", postId, err)
		common.WriteMsg(w, "failed adding reply", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, reply)
}

func (ph *PostHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	postId := vars["post_id"]
	replyId := vars["reply_id"]

	authUser, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteMsg(w, "please sign in first", http.StatusUnauthorized)
		return
	}

	post, err := ph.PostRepo.GetById(r.Context(), PostId(postId))
	if err != nil {
		common.WriteMsg(w, "post not found", http.StatusNotFound)
		return
	}

	reply, ok := post.FindReply(ReplyId(replyId))
	if !ok {
		common.WriteMsg(w, "reply not found", http.StatusNotFound)
		return
	}
	if reply.Author.UserId != authUser.Id {
		common.WriteMsg(w, "only the author can remove the reply", http.StatusForbidden)
		return
	}

	if err := ph.PostRepo.DeleteReply(r.Context(), PostId(postId), ReplyId(replyId)); err != nil {
		logger.Log(r.Context()).Errorf("can't remove reply %s from post %s: %v", replyId, postId, err)
		common.WriteMsg(w, "removing reply failed", http.StatusInternalServerError)
		return
	}

	ph.postsChanged(r.Context())
	common.WriteMsg(w, "success", http.StatusOK)
}
