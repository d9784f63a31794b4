//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/comment"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	commandsmock "shareit/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commentCommandsFixture struct {
	commentRepo *commandsmock.MockCommentRepository
	itemRepo    *commandsmock.MockItemRepository
	userRepo    *commandsmock.MockUserRepository
	history     *commandsmock.MockBookingHistoryReader
	uc          commands.CommentCommands
}

func newCommentCommandsForTest(t *testing.T) *commentCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &commentCommandsFixture{
		commentRepo: commandsmock.NewMockCommentRepository(ctrl),
		itemRepo:    commandsmock.NewMockItemRepository(ctrl),
		userRepo:    commandsmock.NewMockUserRepository(ctrl),
		history:     commandsmock.NewMockBookingHistoryReader(ctrl),
	}
	f.uc = commands.NewCommentUseCase(
		f.commentRepo, f.itemRepo, f.userRepo, f.history,
		fakeBeginner{}, clock.NewMockClock(fixedNow),
	)
	return f
}

func TestCommentCommands_AddComment(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	authorID := uuid.New()
	itemID := uuid.New()

	item := &commands.ItemSnapshot{ID: itemID, OwnerID: ownerID, Name: "drill", Available: true}
	author := &commands.UserSnapshot{ID: authorID, Name: "author"}
	req := reqdto.CreateCommentRequest{Text: "worked great"}

	t.Run("eligible author comments", func(t *testing.T) {
		f := newCommentCommandsForTest(t)
		commentID := uuid.New()

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), authorID).Return(author, nil)
		f.history.EXPECT().HasCompletedApprovedBooking(gomock.Any(), itemID, authorID, fixedNow).Return(true, nil)
		f.commentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *comment.Comment) (uuid.UUID, error) {
				assert.Equal(t, itemID, c.ItemID())
				assert.Equal(t, authorID, c.AuthorID())
				return commentID, nil
			})

		view, err := f.uc.AddComment(ctx, req, itemID, authorID)

		require.NoError(t, err)
		assert.Equal(t, commentID, view.ID)
		assert.Equal(t, "worked great", view.Text)
		assert.Equal(t, "author", view.AuthorName)
		assert.Equal(t, fixedNow, view.Created)
	})

	t.Run("unknown item maps to not found", func(t *testing.T) {
		f := newCommentCommandsForTest(t)
		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).
			Return(nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := f.uc.AddComment(ctx, req, itemID, authorID)

		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("no completed booking blocks the comment", func(t *testing.T) {
		f := newCommentCommandsForTest(t)
		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), authorID).Return(author, nil)
		f.history.EXPECT().HasCompletedApprovedBooking(gomock.Any(), itemID, authorID, fixedNow).Return(false, nil)

		_, err := f.uc.AddComment(ctx, req, itemID, authorID)

		assert.ErrorIs(t, err, commands.ErrCommentNotAllowed)
	})

	t.Run("empty text is invalid", func(t *testing.T) {
		f := newCommentCommandsForTest(t)
		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), authorID).Return(author, nil)
		f.history.EXPECT().HasCompletedApprovedBooking(gomock.Any(), itemID, authorID, fixedNow).Return(true, nil)

		_, err := f.uc.AddComment(ctx, reqdto.CreateCommentRequest{Text: "   "}, itemID, authorID)

		assert.ErrorIs(t, err, commands.ErrInvalidComment)
	})
}
