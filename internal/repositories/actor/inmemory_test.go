package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/repositories/actor"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *actor.InMemoryRepository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := actor.NewFromFile("testdata/actors.yaml")
	s.Require().NoError(err)
	s.repo = repo
}

func (s *InMemoryRepositoryTestSuite) TestLoadFile() {
	out, err := s.repo.Get(s.ctx, actor.GetInput{ID: "mira"})
	s.Require().NoError(err)

	mira := out.Actor
	s.Equal(22, mira.Level)
	s.Equal(10, mira.Attributes[fabula.AttributeDexterity])
	s.Require().Len(mira.Items, 6)

	weapons := mira.EquippedWeapons()
	s.Require().Len(weapons, 2)
	s.Equal("bronze-sword", weapons[0].ID)
	s.Equal(fabula.TwoHanded, weapons[1].Weapon.Hands)

	skill, ok := mira.FindItem("twin-shot")
	s.Require().True(ok)
	s.True(skill.Ability.RollInfo.UsesWeapon())
}

func (s *InMemoryRepositoryTestSuite) TestLoadNormalizesAlchemy() {
	out, err := s.repo.Get(s.ctx, actor.GetInput{ID: "mira"})
	s.Require().NoError(err)

	item, ok := out.Actor.FindItem("alchemy")
	s.Require().True(ok)
	s.Require().NotNil(item.Ability)
	s.Equal(&fabula.AlchemyConfig{RollCount: 4, Trim: true}, item.Ability.Alchemy)
}

func (s *InMemoryRepositoryTestSuite) TestParseFileErrors() {
	testCases := []struct {
		name string
		data string
	}{
		{"missing id", "actors:\n  - name: Nobody\n"},
		{"duplicate id", "actors:\n  - id: a\n  - id: a\n"},
		{"unknown field", "actors:\n  - id: a\n    hitpoints: 3\n"},
		{"oversized alchemy", "actors:\n  - id: a\n    items:\n      - id: alc\n        name: Alchemy\n        kind: miscAbility\n        ability:\n          alchemy:\n            roll_count: 100000\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := actor.ParseFile([]byte(tc.data))
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *InMemoryRepositoryTestSuite) TestPutGetList() {
	_, err := s.repo.Put(s.ctx, actor.PutInput{Actor: &fabula.Actor{ID: "zed", Name: "Zed", Level: 5}})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, actor.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Actors, 2)
	s.Equal("mira", list.Actors[0].ID)
	s.Equal("zed", list.Actors[1].ID)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ID: "zed"})
	s.Require().NoError(err)
	s.Equal(5, got.Actor.Level)

	_, err = s.repo.Get(s.ctx, actor.GetInput{ID: "ash"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestPutRejectsOversizedAlchemy() {
	_, err := s.repo.Put(s.ctx, actor.PutInput{Actor: &fabula.Actor{ID: "zed", Items: []*fabula.Item{{
		ID:      "alc",
		Name:    "Alchemy",
		Kind:    fabula.KindMiscAbility,
		Ability: &fabula.AbilityData{Alchemy: &fabula.AlchemyConfig{RollCount: 100000}},
	}}}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, actor.GetInput{ID: "zed"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, actor.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, actor.PutInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, actor.PutInput{Actor: &fabula.Actor{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestLoadFileMissing() {
	_, err := actor.LoadFile("testdata/missing.yaml")
	s.Error(err)
}
