package impl

import (
	"context"
	"strings"
	"testing"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	mockSvc "agrifarma/internal/mocks/service"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	srv     usecase.AccountUsecase
	repos   *repoMocks
	hasher  *mockSvc.MockPasswordHasher
	storage *mockSvc.MockFileStorage
}

func newAccountServiceForTest(t *testing.T) *accountFixture {
	repos := newRepoMocks(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	storage := mockSvc.NewMockFileStorage(t)

	srv := NewAccountService(AccountServiceParams{
		TxManager: repos.txManager(t),
		Hasher:    hasher,
		Storage:   storage,
		Logger:    newDiscardLogger(),
	})

	return &accountFixture{srv: srv, repos: repos, hasher: hasher, storage: storage}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "kamau",
		Email:    "kamau@example.com",
		Password: "secret1",
		Location: "Nyeri",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountServiceForTest(t)
	input := validRegisterInput()

	f.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	f.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	f.repos.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "kamau", "kamau@example.com").Return(false, nil)
	f.repos.users.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash == "bcrypt-hash" && u.Location == "Nyeri"
		})).
		Return(nil)

	user, err := f.srv.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "kamau", user.Username)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	t.Run("found by lookup", func(t *testing.T) {
		f := newAccountServiceForTest(t)
		f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		f.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
		f.repos.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

		_, err := f.srv.Register(context.Background(), validRegisterInput())
		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
		f.repos.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		f := newAccountServiceForTest(t)
		f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		f.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
		f.repos.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		f.repos.users.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

		_, err := f.srv.Register(context.Background(), validRegisterInput())
		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterInput)
		wantErr error
	}{
		{name: "missing username", mutate: func(in *usecase.RegisterInput) { in.Username = " " }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad email shape", mutate: func(in *usecase.RegisterInput) { in.Email = "kamau@farm" }, wantErr: domainerrors.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountServiceForTest(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := f.srv.Register(context.Background(), input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Register_RemovesPictureOnFailure(t *testing.T) {
	f := newAccountServiceForTest(t)
	input := validRegisterInput()
	input.ProfilePicture = &usecase.FileUpload{Filename: "me.png", ContentType: "image/png", Content: strings.NewReader("png")}

	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("bcrypt-hash", nil)
	f.storage.EXPECT().Save(mock.Anything, "me.png", "image/png", mock.Anything).Return("abc_me.png", nil)
	f.repos.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.storage.EXPECT().Delete(mock.Anything, "abc_me.png").Return(nil)

	_, err := f.srv.Register(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Dashboard(t *testing.T) {
	f := newAccountServiceForTest(t)
	userID := uuid.New()

	f.repos.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	f.repos.products.EXPECT().ListByOwner(mock.Anything, userID).Return([]*entity.Product{{ID: uuid.New()}}, nil)
	f.repos.posts.EXPECT().ListByAuthor(mock.Anything, userID).Return([]*entity.Post{}, nil)
	f.repos.orders.EXPECT().ListByUser(mock.Anything, userID, 5).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	output, err := f.srv.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Len(t, output.Orders, 1)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	f := newAccountServiceForTest(t)
	user := &entity.User{ID: uuid.New(), Email: "kamau@example.com", ProfilePicture: "abc_me.png"}

	f.repos.users.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	f.repos.users.EXPECT().Delete(mock.Anything, user.ID).Return(nil)
	f.storage.EXPECT().Delete(mock.Anything, "abc_me.png").Return(nil)

	require.NoError(t, f.srv.DeleteAccount(context.Background(), user.Email))
}
