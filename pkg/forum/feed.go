package forum

import (
	"context"
	"sync"
)

type Loader interface {
	GetAll(context.Context) ([]*Post, error)
}

// Feed keeps an in-memory, deterministically ordered view of all
// posts. Every refresh re-loads and fully re-sorts; acceptable only
// because expected post volume is small.
type Feed struct {
	loader Loader

	mu     sync.RWMutex
	posts  []*Post
	loaded bool
}

func NewFeed(loader Loader) *Feed {
	return &Feed{loader: loader}
}

// Refresh replaces the view with a freshly loaded, sorted snapshot.
func (f *Feed) Refresh(ctx context.Context) error {
	posts, err := f.loader.GetAll(ctx)
	if err != nil {
		return err
	}
	SortPosts(posts)

	f.mu.Lock()
	f.posts = posts
	f.loaded = true
	f.mu.Unlock()
	return nil
}

// Posts returns the current view, loading it first if needed.
func (f *Feed) Posts(ctx context.Context) ([]*Post, error) {
	f.mu.RLock()
	loaded := f.loaded
	f.mu.RUnlock()

	if !loaded {
		if err := f.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}
