package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"post-app/pkg/config"
	"post-app/pkg/jwt"
	"post-app/pkg/logger"
	"post-app/pkg/s3"
	contentApp "post-app/services/content/internal/app"
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"
	"post-app/services/content/internal/repo/webapi"
	"post-app/services/content/internal/usecase"
)

type seedUser struct {
	email    string
	userName string
	password string
}

var testUsers = []seedUser{
	{"alice@test.com", "alice_cat", "password123"},
	{"bob@test.com", "bob_cat", "password123"},
	{"charlie@test.com", "charlie_cat", "password123"},
	{"diana@test.com", "diana_cat", "password123"},
	{"eve@test.com", "eve_cat", "password123"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	repos, closeStore, err := contentApp.NewRepositories(cfg, log)
	if err != nil {
		log.Error("Failed to open datastore: %v", err)
		panic(err)
	}
	defer closeStore()

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := seed(context.Background(), cfg, repos, webapi.NewAssetStore(s3Client), log); err != nil {
		log.Error("Failed to seed datastore: %v", err)
		panic(err)
	}

	log.Info("Datastore seeded successfully!")
}

func seed(ctx context.Context, cfg *config.Config, repos repo.Repositories, assets repo.AssetStore, log *logger.Logger) error {
	authUseCase := usecase.NewAuthUseCase(repos.Users, jwt.NewService(cfg.JWTSecret), log)
	contentUseCase := usecase.NewContentUseCase(repos, assets, nil, cfg.AssetNamespace, log)
	httpClient := &http.Client{Timeout: 30 * time.Second}

	userIDs := make([]string, 0, len(testUsers))
	var postIDs []string

	for _, data := range testUsers {
		user, _, err := authUseCase.Register(ctx, usecase.RegisterInput{
			UserName: data.userName,
			Email:    data.email,
			Password: data.password,
		})
		if errors.Is(err, entity.ErrEmailTaken) {
			log.Info("User %s already exists, skipping", data.userName)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to register %s: %w", data.userName, err)
		}

		log.Info("Created user: %s (%s)", user.UserName, user.Email)
		userIDs = append(userIDs, user.ID)

		postsCount := 2 + (len(userIDs) % 3)
		for i := 0; i < postsCount; i++ {
			post, err := createPostWithCatImage(ctx, contentUseCase, httpClient, user, i, log)
			if err != nil {
				log.Error("Failed to create post %d for user %s: %v", i+1, user.UserName, err)
				continue
			}
			postIDs = append(postIDs, post.ID)
			time.Sleep(200 * time.Millisecond)
		}
	}

	for i, userID := range userIDs {
		for j, postID := range postIDs {
			if (i+j)%2 != 0 {
				continue
			}
			if _, err := contentUseCase.ToggleLike(ctx, userID, postID); err != nil {
				log.Error("Failed to like post %s: %v", postID, err)
			}
			if j%3 == 0 {
				input := usecase.CreateCommentInput{Content: fmt.Sprintf("Lovely cat! (comment %d)", i+1)}
				if _, err := contentUseCase.CreateComment(ctx, userID, postID, input); err != nil {
					log.Error("Failed to comment on post %s: %v", postID, err)
				}
			}
		}
	}

	log.Info("Created %d users and %d posts with likes and comments", len(userIDs), len(postIDs))
	return nil
}

func createPostWithCatImage(ctx context.Context, uc usecase.ContentUseCase, httpClient *http.Client, user *entity.User, index int, log *logger.Logger) (*entity.Post, error) {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += fmt.Sprintf("/says/Hello from %s", user.UserName)
	}

	input := usecase.CreatePostInput{
		Title:       fmt.Sprintf("Cat Post #%d by %s", index+1, user.UserName),
		Description: fmt.Sprintf("A cute cat from CATAAS API! Post #%d", index+1),
	}

	imageData, err := fetchImage(httpClient, cataasURL)
	if err != nil {
		log.Warn("Creating post without image: %v", err)
	} else {
		log.Info("Downloaded image: %d bytes", len(imageData))
		input.Image = &entity.ImageFile{
			Name:        fmt.Sprintf("seed_%d.jpg", index),
			ContentType: "image/jpeg",
			Body:        bytes.NewReader(imageData),
		}
	}

	post, err := uc.CreatePost(ctx, user.ID, input)
	if err != nil {
		return nil, err
	}

	log.Info("Created post: %s by %s", post.Title, user.UserName)
	return post, nil
}

func fetchImage(httpClient *http.Client, url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}
	return imageData, nil
}
