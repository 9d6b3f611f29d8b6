package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  *dicesession.InMemoryRepository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))
	s.repo = dicesession.NewInMemory(s.clock)
}

func (s *InMemoryRepositoryTestSuite) appendRolls(ids ...string) {
	rolls := make([]dicesession.DiceRoll, 0, len(ids))
	for _, id := range ids {
		rolls = append(rolls, dicesession.DiceRoll{RollID: id, Dice: []int{1, 2}})
	}
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "act_1", Context: "table", Rolls: rolls})
	s.Require().NoError(err)
}

func (s *InMemoryRepositoryTestSuite) TestAppendGetDelete() {
	s.appendRolls("roll_1")
	s.appendRolls("roll_2")

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "act_1", Context: "table"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 2)
	s.Equal("roll_1", got.Session.Rolls[0].RollID)
	s.Equal(s.clock.Now().Add(15*time.Minute), got.Session.ExpiresAt)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "act_1", Context: "table"})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "act_1", Context: "table"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	s.appendRolls("roll_1")
	s.clock.Advance(16 * time.Minute)

	_, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "act_1", Context: "table"})
	s.True(errors.IsNotFound(err))

	s.appendRolls("roll_2")
	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "act_1", Context: "table"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Equal("roll_2", got.Session.Rolls[0].RollID)
}

func (s *InMemoryRepositoryTestSuite) TestTrimsToFifty() {
	ids := make([]string, 55)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	s.appendRolls(ids...)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "act_1", Context: "table"})
	s.Require().NoError(err)
	s.Len(got.Session.Rolls, 50)
	s.Equal(ids[5], got.Session.Rolls[0].RollID)
}

func (s *InMemoryRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "act_1", Context: "table"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{Context: "table"})
	s.True(errors.IsInvalidArgument(err))
}
