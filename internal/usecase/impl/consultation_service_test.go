package impl

import (
	"context"
	"testing"
	"time"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConsultationServiceForTest(t *testing.T) (usecase.ConsultationUsecase, *repoMocks) {
	repos := newRepoMocks(t)
	srv := NewConsultationService(ConsultationServiceParams{
		TxManager: repos.txManager(t),
		Logger:    newDiscardLogger(),
	})

	return srv, repos
}

func approvedConsultant() *entity.User {
	return &entity.User{ID: uuid.New(), IsConsultant: true, ConsultantApproved: true, ConsultantCategory: "Soil"}
}

func TestConsultationService_BookConsultation(t *testing.T) {
	srv, repos := newConsultationServiceForTest(t)
	consultant := approvedConsultant()
	clientID := uuid.New()

	repos.users.EXPECT().FindByID(mock.Anything, consultant.ID).Return(consultant, nil)
	repos.consultations.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Consultation) bool {
			return c.Status == entity.ConsultationStatusPending && c.Fee.IsZero() && c.ScheduledDate != nil
		})).
		Return(nil)

	consultation, err := srv.BookConsultation(context.Background(), clientID, consultant.ID, &usecase.BookConsultationInput{
		Category:      "Soil",
		Description:   "Acidic soil in my plot",
		ScheduledDate: "2026-05-04T09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, consultation.ScheduledDate.Hour())
	assert.Equal(t, time.May, consultation.ScheduledDate.Month())
}

func TestConsultationService_BookConsultation_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.BookConsultationInput
		setup   func(repos *repoMocks, consultant *entity.User)
		wantErr error
	}{
		{
			name:    "missing description",
			input:   usecase.BookConsultationInput{Category: "Soil"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "malformed schedule",
			input:   usecase.BookConsultationInput{Category: "Soil", Description: "d", ScheduledDate: "04/05/2026 9am"},
			wantErr: domainerrors.ErrInvalidSchedule,
		},
		{
			name:  "consultant not approved",
			input: usecase.BookConsultationInput{Category: "Soil", Description: "d"},
			setup: func(repos *repoMocks, consultant *entity.User) {
				consultant.ConsultantApproved = false
				repos.users.EXPECT().FindByID(mock.Anything, consultant.ID).Return(consultant, nil)
			},
			wantErr: domainerrors.ErrConsultantNotApproved,
		},
		{
			name:  "consultant missing",
			input: usecase.BookConsultationInput{Category: "Soil", Description: "d"},
			setup: func(repos *repoMocks, consultant *entity.User) {
				repos.users.EXPECT().FindByID(mock.Anything, consultant.ID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repos := newConsultationServiceForTest(t)
			consultant := approvedConsultant()
			if tt.setup != nil {
				tt.setup(repos, consultant)
			}

			_, err := srv.BookConsultation(context.Background(), uuid.New(), consultant.ID, &tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			repos.consultations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestConsultationService_BecomeConsultant(t *testing.T) {
	srv, repos := newConsultationServiceForTest(t)
	user := &entity.User{ID: uuid.New(), ConsultantApproved: true}

	repos.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	repos.users.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.IsConsultant && !u.ConsultantApproved && u.ConsultantCategory == "Livestock" && u.Expertise == "Dairy"
		})).
		Return(nil)

	err := srv.BecomeConsultant(context.Background(), user.ID, &usecase.BecomeConsultantInput{
		Category: "Livestock", Experience: "10 years", Expertise: "Dairy",
	})
	require.NoError(t, err)
}

func TestConsultationService_BecomeConsultant_RequiresFields(t *testing.T) {
	srv, _ := newConsultationServiceForTest(t)

	err := srv.BecomeConsultant(context.Background(), uuid.New(), &usecase.BecomeConsultantInput{Category: "Livestock"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConsultationService_ApproveConsultant(t *testing.T) {
	t.Run("approves applicant", func(t *testing.T) {
		srv, repos := newConsultationServiceForTest(t)
		applicant := &entity.User{ID: uuid.New(), Email: "vet@example.com", IsConsultant: true}

		repos.users.EXPECT().FindByEmail(mock.Anything, applicant.Email).Return(applicant, nil)
		repos.users.EXPECT().Update(mock.Anything, applicant).Return(nil)

		user, err := srv.ApproveConsultant(context.Background(), applicant.Email)
		require.NoError(t, err)
		assert.True(t, user.IsApprovedConsultant())
	})

	t.Run("rejects non applicant", func(t *testing.T) {
		srv, repos := newConsultationServiceForTest(t)
		repos.users.EXPECT().FindByEmail(mock.Anything, "x@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := srv.ApproveConsultant(context.Background(), "x@example.com")
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestConsultationService_ListConsultants(t *testing.T) {
	srv, repos := newConsultationServiceForTest(t)
	expected := []*entity.User{approvedConsultant()}

	repos.users.EXPECT().ListApprovedConsultants(mock.Anything).Return(expected, nil)

	consultants, err := srv.ListConsultants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, consultants)
}
