package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/store/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc           *InteractionService
	relationships *memory.RelationshipStore
	reactions     *memory.ReactionStore
	posts         *memory.PostRepository
	notifications *memory.NotificationStore
	users         *memory.UserDirectory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		relationships: memory.NewRelationshipStore(),
		reactions:     memory.NewReactionStore(),
		posts:         memory.NewPostRepository(),
		notifications: memory.NewNotificationStore(),
		users:         memory.NewUserDirectory(),
	}
	f.svc = NewInteractionService(f.relationships, f.reactions, f.posts, f.users,
		NewNotificationService(f.notifications, nil), nil)
	return f
}

func (f *fixture) user() uuid.UUID {
	id := uuid.New()
	f.users.Add(id)
	return id
}

func (f *fixture) post(t *testing.T, author uuid.UUID, at time.Time) model.Post {
	t.Helper()
	p := model.Post{ID: uuid.New(), AuthorID: author, Title: "post", CreatedAt: at, UpdatedAt: at}
	require.NoError(t, f.posts.Create(context.Background(), &p))
	return p
}

func (f *fixture) notificationsFor(t *testing.T, recipient uuid.UUID) []model.Notification {
	t.Helper()
	list, err := f.svc.Notifications(context.Background(), recipient, model.ListOptions{})
	require.NoError(t, err)
	return list
}

func TestFollowTwice_OneEdgeOneNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, b := f.user(), f.user()

	for i := 0; i < 2; i++ {
		res, err := f.svc.Follow(ctx, a, b)
		require.NoError(t, err)
		assert.True(t, res.Following)
	}

	followees, _ := f.relationships.Followees(ctx, a)
	assert.Len(t, followees, 1)

	list := f.notificationsFor(t, b)
	require.Len(t, list, 1)
	assert.Equal(t, model.VerbFollowed, list[0].Verb)
	assert.Equal(t, a, list[0].ActorID)
	assert.Equal(t, model.TargetUser, list[0].TargetType)
	assert.Equal(t, b, list[0].TargetID)
	assert.False(t, list[0].IsRead)
}

func TestFollowSelf_Rejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.user()

	res, err := f.svc.Follow(ctx, a, a)
	assert.ErrorIs(t, err, errno.ErrSelfFollow)
	assert.Nil(t, res)

	following, _ := f.relationships.IsFollowing(ctx, a, a)
	assert.False(t, following)
	assert.Empty(t, f.notificationsFor(t, a))
}

func TestFollowUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Follow(context.Background(), f.user(), uuid.New())
	assert.ErrorIs(t, err, errno.ErrUserNotFound)
}

func TestUnfollowNeverFollowed_NoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, b := f.user(), f.user()

	res, err := f.svc.Unfollow(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.Empty(t, f.notificationsFor(t, b))
}

func TestFollowUnfollowFollow_TwoNotifications(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, b := f.user(), f.user()

	_, err := f.svc.Follow(ctx, a, b)
	require.NoError(t, err)
	_, err = f.svc.Unfollow(ctx, a, b)
	require.NoError(t, err)
	_, err = f.svc.Follow(ctx, a, b)
	require.NoError(t, err)

	following, _ := f.relationships.IsFollowing(ctx, a, b)
	assert.True(t, following)
	assert.Len(t, f.notificationsFor(t, b), 2)
}

func TestConcurrentFollow_ExactlyOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, b := f.user(), f.user()

	const n = 64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.Follow(ctx, a, b)
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	followers, _ := f.relationships.Followers(ctx, b)
	assert.Len(t, followers, 1)
	assert.Len(t, f.notificationsFor(t, b), 1)
}

func TestLikeTwice_OneEdgeOneNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author, fan := f.user(), f.user()
	p := f.post(t, author, time.Now())

	res, err := f.svc.Like(ctx, fan, p.ID)
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true}, res)

	res, err = f.svc.Like(ctx, fan, p.ID)
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true, AlreadyLiked: true}, res)

	count, _ := f.reactions.LikeCount(ctx, p.ID)
	assert.Equal(t, int64(1), count)

	list := f.notificationsFor(t, author)
	require.Len(t, list, 1)
	assert.Equal(t, model.VerbLiked, list[0].Verb)
	assert.Equal(t, fan, list[0].ActorID)
	assert.Equal(t, model.TargetPost, list[0].TargetType)
	assert.Equal(t, p.ID, list[0].TargetID)
}

func TestSelfLike_Allowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author := f.user()
	p := f.post(t, author, time.Now())

	res, err := f.svc.Like(ctx, author, p.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Len(t, f.notificationsFor(t, author), 1)
}

func TestLikeMissingPost(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Like(context.Background(), f.user(), uuid.New())
	assert.ErrorIs(t, err, errno.ErrPostNotFound)
}

func TestUnlikeNeverLiked_Error(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author, fan, other := f.user(), f.user(), f.user()
	p := f.post(t, author, time.Now())
	_, err := f.svc.Like(ctx, other, p.ID)
	require.NoError(t, err)

	res, err := f.svc.Unlike(ctx, fan, p.ID)
	assert.ErrorIs(t, err, errno.ErrNotLiked)
	assert.Nil(t, res)

	count, _ := f.reactions.LikeCount(ctx, p.ID)
	assert.Equal(t, int64(1), count, "reaction store must be unchanged")
}

func TestUnlikeMissingPost(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.Unlike(context.Background(), f.user(), uuid.New())
	assert.ErrorIs(t, err, errno.ErrPostNotFound)
	assert.Nil(t, res)
}

func TestConcurrentLike_ExactlyOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author, fan := f.user(), f.user()
	p := f.post(t, author, time.Now())

	const n = 64
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		fresh   int
		already int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := f.svc.Like(ctx, fan, p.ID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			if res.AlreadyLiked {
				already++
			} else {
				fresh++
			}
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, fresh)
	assert.Equal(t, n-1, already)
	count, _ := f.reactions.LikeCount(ctx, p.ID)
	assert.Equal(t, int64(1), count)
	assert.Len(t, f.notificationsFor(t, author), 1)
}

func TestConcurrentUnlike_ExactlyOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author, fan := f.user(), f.user()
	p := f.post(t, author, time.Now())
	_, err := f.svc.Like(ctx, fan, p.ID)
	require.NoError(t, err)

	const n = 64
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		notLiked int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.Unlike(ctx, fan, p.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, errno.ErrNotLiked):
				notLiked++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, notLiked)
	count, _ := f.reactions.LikeCount(ctx, p.ID)
	assert.Equal(t, int64(0), count)
}

func TestRelikeAfterUnlike_NewNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	author, fan := f.user(), f.user()
	p := f.post(t, author, time.Now())

	_, err := f.svc.Like(ctx, fan, p.ID)
	require.NoError(t, err)
	res, err := f.svc.Unlike(ctx, fan, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	_, err = f.svc.Like(ctx, fan, p.ID)
	require.NoError(t, err)

	assert.Len(t, f.notificationsFor(t, author), 2)
}

func TestFeed_EmptyWhenFollowingNobody(t *testing.T) {
	f := newFixture(t)
	author := f.user()
	f.post(t, author, time.Now())

	feed, err := f.svc.Feed(context.Background(), f.user(), 0)
	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestFeed_FolloweesNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u, a, b, stranger := f.user(), f.user(), f.user(), f.user()
	base := time.Now()

	a1 := f.post(t, a, base)
	b1 := f.post(t, b, base.Add(time.Minute))
	f.post(t, stranger, base.Add(2*time.Minute))
	a2 := f.post(t, a, base.Add(3*time.Minute))
	f.post(t, u, base.Add(4*time.Minute))

	_, err := f.svc.Follow(ctx, u, a)
	require.NoError(t, err)
	_, err = f.svc.Follow(ctx, u, b)
	require.NoError(t, err)

	feed, err := f.svc.Feed(ctx, u, 0)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(feed))
	for _, p := range feed {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uuid.UUID{a2.ID, b1.ID, a1.ID}, ids)

	limited, err := f.svc.Feed(ctx, u, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

// failingRelationships 模拟持久化失败
type failingRelationships struct {
	*memory.RelationshipStore
}

func (failingRelationships) Follow(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, errors.New("connection refused")
}

func TestFollow_PersistenceFailureEmitsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc = NewInteractionService(failingRelationships{f.relationships}, f.reactions, f.posts, f.users,
		NewNotificationService(f.notifications, nil), nil)
	a, b := f.user(), f.user()

	_, err := f.svc.Follow(ctx, a, b)
	assert.ErrorIs(t, err, errno.ErrPersistence)

	var pe *errno.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "follow", pe.Op)
	assert.Empty(t, f.notificationsFor(t, b))
}

type failingNotifications struct {
	*memory.NotificationStore
}

func (failingNotifications) Create(context.Context, *model.Notification) error {
	return errors.New("disk full")
}

func TestFollow_NotificationFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc = NewInteractionService(f.relationships, f.reactions, f.posts, f.users,
		NewNotificationService(failingNotifications{f.notifications}, nil), nil)
	a, b := f.user(), f.user()

	_, err := f.svc.Follow(ctx, a, b)
	assert.ErrorIs(t, err, errno.ErrPersistence)

	following, _ := f.relationships.IsFollowing(ctx, a, b)
	assert.True(t, following, "the committed edge stays in place")
}
