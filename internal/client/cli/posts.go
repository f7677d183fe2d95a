package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Posts(ctx context.Context) error {
	posts, err := a.api.ListPosts(ctx, "")
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts yet")
		return nil
	}

	for _, p := range posts {
		fmt.Printf("%s  %s  (%s)\n", p.ID, p.Title, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) AddPost(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter post text", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.api.CreatePost(ctx, a.accessToken, title, content)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Published %s\n", post.ID)
	return nil
}

func (a *App) Comments(ctx context.Context) error {
	postID, err := GetSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		return err
	}

	comments, err := a.api.ListComments(ctx, postID)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet")
		return nil
	}

	for _, c := range comments {
		fmt.Printf("%s  %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author, c.Content)
	}
	return nil
}

func (a *App) AddComment(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	postID, err := GetSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := a.api.CreateComment(ctx, a.accessToken, postID, content)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Added comment %s\n", comment.ID)
	return nil
}
