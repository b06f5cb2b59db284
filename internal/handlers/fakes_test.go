package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"photo-album-backend/internal/models"
	"photo-album-backend/internal/repository"
	"photo-album-backend/internal/services"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory store fakes implementing the handler-facing interfaces.
// Write semantics mirror the real collections: $addToSet behaves as a
// set, partial updates leave unspecified fields alone.

type fakeAlbumStore struct {
	albums map[string]*models.Album
	err    error
}

func newFakeAlbumStore() *fakeAlbumStore {
	return &fakeAlbumStore{albums: map[string]*models.Album{}}
}

func (f *fakeAlbumStore) Create(_ context.Context, album *models.Album) (*models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	album.ID = bson.NewObjectID()
	if album.SharedUser == nil {
		album.SharedUser = []string{}
	}
	f.albums[album.ID.Hex()] = album
	return album, nil
}

func (f *fakeAlbumStore) FindAll(_ context.Context) ([]models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Album{}
	for _, a := range f.albums {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAlbumStore) AddSharedUser(_ context.Context, id, sharedUser string) (*models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	album, ok := f.albums[id]
	if !ok {
		return nil, fmt.Errorf("failed to share album: no document for %s", id)
	}
	for _, u := range album.SharedUser {
		if u == sharedUser {
			return album, nil
		}
	}
	album.SharedUser = append(album.SharedUser, sharedUser)
	return album, nil
}

func (f *fakeAlbumStore) Update(_ context.Context, id string, fields map[string]any) (*models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	album, ok := f.albums[id]
	if !ok {
		return nil, fmt.Errorf("failed to update album: no document for %s", id)
	}
	for k, v := range fields {
		switch k {
		case "name":
			album.Name, _ = v.(string)
		case "description":
			album.Description, _ = v.(string)
		case "ownerId":
			album.OwnerID, _ = v.(string)
		}
	}
	return album, nil
}

func (f *fakeAlbumStore) Delete(_ context.Context, id string) (*models.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	album, ok := f.albums[id]
	if !ok {
		return nil, fmt.Errorf("failed to delete album: no document for %s", id)
	}
	delete(f.albums, id)
	return album, nil
}

type fakeImageStore struct {
	images map[string]*models.Image
	err    error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{images: map[string]*models.Image{}}
}

func (f *fakeImageStore) Create(_ context.Context, image *models.Image) (*models.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	image.ID = bson.NewObjectID()
	f.images[image.ID.Hex()] = image
	return image, nil
}

func (f *fakeImageStore) FindAll(_ context.Context) ([]models.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Image{}
	for _, img := range f.images {
		out = append(out, *img)
	}
	return out, nil
}

func (f *fakeImageStore) Delete(_ context.Context, id string) (*models.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	image, ok := f.images[id]
	if !ok {
		return nil, fmt.Errorf("failed to delete image: no document for %s", id)
	}
	delete(f.images, id)
	return image, nil
}

func (f *fakeImageStore) DeleteByAlbum(_ context.Context, albumID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var deleted int64
	for id, img := range f.images {
		if img.AlbumID == albumID {
			delete(f.images, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user.ID = bson.NewObjectID()
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeUserStore) FindByUserID(_ context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].UserID == userID {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) FindByEmailNot(_ context.Context, email string) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.User{}
	for _, u := range f.users {
		if u.Email != email {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeShareStore struct {
	records map[string][]models.ShareRecordWithAlbum
	err     error
}

func newFakeShareStore() *fakeShareStore {
	return &fakeShareStore{records: map[string][]models.ShareRecordWithAlbum{}}
}

func (f *fakeShareStore) FindAllWithAlbum(_ context.Context) ([]models.ShareRecordWithAlbum, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.ShareRecordWithAlbum{}
	for _, recs := range f.records {
		out = append(out, recs...)
	}
	return out, nil
}

func (f *fakeShareStore) DeleteByAlbum(_ context.Context, albumID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	deleted := int64(len(f.records[albumID]))
	delete(f.records, albumID)
	return deleted, nil
}

type fakeUploader struct {
	url   string
	size  int64
	err   error
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, _ multipart.File, _ *multipart.FileHeader) (*services.UploadResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &services.UploadResult{URL: f.url, Size: f.size}, nil
}

type fakeAuthProvider struct {
	authURL      string
	token        string
	exchangeErr  error
	profile      *services.Profile
	profileErr   error
	profileCalls int
}

func (f *fakeAuthProvider) AuthCodeURL() string {
	return f.authURL
}

func (f *fakeAuthProvider) Exchange(_ context.Context, code string) (string, error) {
	if f.exchangeErr != nil {
		return "", f.exchangeErr
	}
	if code == "" {
		return "", errors.New("missing code")
	}
	return f.token, nil
}

func (f *fakeAuthProvider) FetchProfile(_ context.Context, _ string) (*services.Profile, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}
