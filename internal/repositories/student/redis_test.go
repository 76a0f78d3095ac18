package student

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestUpsertAndGetStudent() {
	out, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza",
		Group: "INF-2A",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.True(out.Created)
	s.NotEmpty(out.Student.ID)

	retrieved, err := s.repo.GetStudent(context.Background(), &GetStudentInput{
		StudentID: out.Student.ID,
	})
	s.Require().NoError(err)

	s.Equal("SP3012345", retrieved.Pront)
	s.Equal("Ana Souza", retrieved.Name)
	s.Equal("INF-2A", retrieved.Group)
	s.True(retrieved.Active)
}

func (s *RedisRepositoryTestSuite) TestGetStudentByPront() {
	out, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza",
		Group: "INF-2A",
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetStudentByPront(context.Background(), &GetStudentByProntInput{
		Pront: "SP3012345",
	})
	s.Require().NoError(err)
	s.Equal(out.Student.ID, retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetStudentNotFound() {
	_, err := s.repo.GetStudentByPront(context.Background(), &GetStudentByProntInput{
		Pront: "SP9999999",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrStudentNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpsertUpdatesExistingStudent() {
	first, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza",
		Group: "INF-2A",
	})
	s.Require().NoError(err)
	s.True(first.Created)

	second, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza Lima",
		Group: "INF-2A",
	})
	s.Require().NoError(err)
	s.False(second.Created)
	s.Equal(first.Student.ID, second.Student.ID)
	s.Equal("Ana Souza Lima", second.Student.Name)
}

func (s *RedisRepositoryTestSuite) TestUpsertMovesStudentBetweenGroups() {
	out, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza",
		Group: "INF-2A",
	})
	s.Require().NoError(err)

	_, err = s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
		Pront: "SP3012345",
		Name:  "Ana Souza",
		Group: "INF-3A",
	})
	s.Require().NoError(err)

	oldGroup, err := s.repo.ListStudentsByGroups(context.Background(), &ListStudentsByGroupsInput{
		Groups: []string{"INF-2A"},
	})
	s.Require().NoError(err)
	s.Empty(oldGroup.Students)

	newGroup, err := s.repo.ListStudentsByGroups(context.Background(), &ListStudentsByGroupsInput{
		Groups: []string{"INF-3A"},
	})
	s.Require().NoError(err)
	s.Require().Len(newGroup.Students, 1)
	s.Equal(out.Student.ID, newGroup.Students[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListStudents() {
	pronts := []string{"SP3012345", "SP3012346", "SP3012347"}
	for _, pront := range pronts {
		_, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
			Pront: pront,
			Name:  "Student " + pront,
			Group: "INF-2A",
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListStudents(context.Background(), &ListStudentsInput{})
	s.Require().NoError(err)
	s.Len(out.Students, 3)
}

func (s *RedisRepositoryTestSuite) TestListStudentsByGroupsUnion() {
	groups := map[string]string{
		"SP3012345": "INF-2A",
		"SP3012346": "INF-2B",
		"SP3012347": "MEC-1A",
	}
	for pront, group := range groups {
		_, err := s.repo.UpsertStudent(context.Background(), &UpsertStudentInput{
			Pront: pront,
			Name:  "Student " + pront,
			Group: group,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListStudentsByGroups(context.Background(), &ListStudentsByGroupsInput{
		Groups: []string{"INF-2A", "INF-2B"},
	})
	s.Require().NoError(err)
	s.Len(out.Students, 2)
}

func (s *RedisRepositoryTestSuite) TestListStudentsByGroupsEmptyInput() {
	out, err := s.repo.ListStudentsByGroups(context.Background(), &ListStudentsByGroupsInput{})
	s.Require().NoError(err)
	s.Empty(out.Students)
}
