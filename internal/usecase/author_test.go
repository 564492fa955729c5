package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/entity"
	"bookstore/internal/store/mocks"
	"bookstore/internal/usecase"
)

var testAuthor = entity.Author{
	ID:         5,
	FirstName:  "George",
	LastName:   "Orwell",
	Bio:        "English novelist and essayist.",
	RowVersion: 3,
}

func updateInput(id int64) usecase.AuthorUpdateInput {
	return usecase.AuthorUpdateInput{
		ID: id,
		AuthorInput: usecase.AuthorInput{
			FirstName: "Eric",
			LastName:  "Blair",
			Bio:       "Pen name George Orwell.",
		},
	}
}

func TestAuthorService_Update_IDMismatchSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	// no expectations registered: any store call fails the test
	err := svc.Update(context.Background(), 5, updateInput(6))
	assert.ErrorIs(t, err, usecase.ErrIDMismatch)
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entity.Author{}, usecase.ErrNotFound)

	err := svc.Update(context.Background(), 5, updateInput(5))
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestAuthorService_Update_AppliesMutableFieldsAtLoadedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *entity.Author) error {
			assert.Equal(t, int64(5), a.ID)
			assert.Equal(t, int64(3), a.RowVersion, "commit must carry the version read at identify")
			assert.Equal(t, "Eric", a.FirstName)
			assert.Equal(t, "Blair", a.LastName)
			return nil
		})

	err := svc.Update(context.Background(), 5, updateInput(5))
	require.NoError(t, err)
}

func TestAuthorService_Update_ConflictSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(usecase.ErrConflict),
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil),
	)

	err := svc.Update(context.Background(), 5, updateInput(5))
	assert.ErrorIs(t, err, usecase.ErrConflict, "conflicts are surfaced, never retried")
}

func TestAuthorService_Update_ConflictAfterDeleteIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(usecase.ErrConflict),
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entity.Author{}, usecase.ErrNotFound),
	)

	err := svc.Update(context.Background(), 5, updateInput(5))
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestAuthorService_Delete_RejectedWhileOwningBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil)
	repo.EXPECT().CountBooks(gomock.Any(), int64(5)).Return(2, nil)

	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, usecase.ErrAuthorHasBooks)
}

func TestAuthorService_Delete_EmptyAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuthorRepository(ctrl)
	svc := usecase.NewAuthorService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(testAuthor, nil)
	repo.EXPECT().CountBooks(gomock.Any(), int64(5)).Return(0, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	err := svc.Delete(context.Background(), 5)
	assert.NoError(t, err)
}
