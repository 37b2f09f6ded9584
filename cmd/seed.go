package main

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"ratemypg/pkg/chat"
	. "ratemypg/pkg/common"
	"ratemypg/pkg/forum"
	"ratemypg/pkg/university"
	"ratemypg/pkg/user"
)

var (
	f             = faker.New()
	onePassForAll = HashPass("sdfsdfsdf", RandStringRunes(8)) // salt must have len of 8
)

type IUserRepo interface {
	Add(*user.User) (string, error)
	GetAll() ([]*user.User, error)
}

func createAuthors(userRepo IUserRepo) []*user.User {
	// User for experiments (not random)
	authors := []*user.User{genUser(userRepo, "pike")}
	for i := 1; i <= 5; i++ {
		authors = append(authors, genUser(userRepo, strings.ToLower(f.Person().FirstName())))
	}
	return authors
}

func seed(userRepo IUserRepo, postRepo *forum.Repo, catalogueRepo *university.Repo, messageRepo *chat.Repo) {
	ctx := context.Background()

	authors, err := userRepo.GetAll()
	if err != nil {
		log.Fatalln("seed: can't get all authors:", err)
	}
	if len(authors) == 0 {
		authors = createAuthors(userRepo)
	}

	universities := []*university.University{}
	for i := 0; i < 3; i++ {
		u := genUniversity()
		if _, err := catalogueRepo.Add(ctx, u); err != nil {
			log.Fatalln("seed: can't add university:", err)
		}
		universities = append(universities, u)
		for j := 0; j <= rand.Intn(4); j++ {
			if _, err := catalogueRepo.AddPG(ctx, genPG(u, authors)); err != nil {
				log.Fatalln("seed: can't add pg:", err)
			}
		}
	}

	for i := 0; i <= 5; i++ {
		if _, err := postRepo.Add(ctx, genPost(authors, universities)); err != nil {
			log.Fatalln("seed: can't add post:", err)
		}
	}

	for i := 0; i < 20; i++ {
		if _, err := messageRepo.Add(ctx, genMessage(authors)); err != nil {
			log.Fatalln("seed: can't add message:", err)
		}
	}
}

func genUser(userRepo IUserRepo, username string) *user.User {
	u := &user.User{
		Username: username,
		Password: onePassForAll,
	}
	id, err := userRepo.Add(u)
	if err != nil {
		log.Fatalln("seed: can't add user:", err)
	}
	u.Id = id
	return u
}

func genUniversity() *university.University {
	return &university.University{
		Id:      university.UniversityId(RandStringRunes(12)),
		Name:    f.Company().Name() + " University",
		Address: f.Address().Address(),
	}
}

func genPG(u *university.University, users []*user.User) *university.PG {
	return &university.PG{
		Id:           university.PGId(RandStringRunes(12)),
		UniversityId: u.Id,
		Name:         f.Company().Name() + " PG",
		Location:     f.Address().StreetName(),
		Contact:      f.Phone().Number(),
		Owner:        f.Person().Name(),
	}
}

func genTitle() string {
	return strings.Join(f.Lorem().Words(rand.Intn(5)+3), " ")
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func genReplies(users []*user.User) []forum.Reply {
	n := rand.Intn(5)
	replies := []forum.Reply{}
	for i := 0; i <= n; i++ {
		replies = append(replies, forum.Reply{
			Id:      forum.ReplyId(RandStringRunes(12)),
			Author:  user.SnapshotOf(randUser(users)),
			Content: genText(),
			Created: f.Time().Time(time.Now()),
			Likes:   genLikes(users),
		})
	}
	return replies
}

func genLikes(users []*user.User) []string {
	likes := []string{}
	for _, u := range users {
		if rand.Intn(3) == 0 {
			likes = append(likes, u.Id)
		}
	}
	return likes
}

func genPost(users []*user.User, universities []*university.University) *forum.Post {
	var uniName string
	if len(universities) > 0 {
		uniName = universities[rand.Intn(len(universities))].Name
	}
	return &forum.Post{
		Id:         forum.PostId(RandStringRunes(12)),
		Title:      genTitle(),
		Content:    genText(),
		Author:     user.SnapshotOf(randUser(users)),
		University: uniName,
		Created:    f.Time().Time(time.Now()),
		Likes:      genLikes(users),
		Replies:    genReplies(users),
	}
}

func genMessage(users []*user.User) *chat.Message {
	return &chat.Message{
		Id:      chat.MessageId(RandStringRunes(12)),
		Author:  user.SnapshotOf(randUser(users)),
		Text:    strings.Join(f.Lorem().Words(rand.Intn(8)+2), " "),
		Created: f.Time().Time(time.Now()),
	}
}

func randUser(users []*user.User) *user.User {
	idx := rand.Intn(len(users))
	return users[idx]
}
