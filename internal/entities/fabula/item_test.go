package fabula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

func TestRollConfigFor(t *testing.T) {
	weaponRoll := fabula.RollConfig{
		PrimaryAttribute:   fabula.AttributeDexterity,
		SecondaryAttribute: fabula.AttributeInsight,
		HasDamage:          true,
	}
	spellRoll := &fabula.RollConfig{
		PrimaryAttribute:   fabula.AttributeInsight,
		SecondaryAttribute: fabula.AttributeWillpower,
	}

	testCases := []struct {
		name    string
		item    *fabula.Item
		want    *fabula.RollConfig
		wantErr string
	}{
		{
			name: "weapon uses its direct roll",
			item: &fabula.Item{ID: "w1", Kind: fabula.KindWeapon, Weapon: &fabula.WeaponData{Roll: weaponRoll}},
			want: &weaponRoll,
		},
		{
			name:    "weapon without roll is invalid",
			item:    &fabula.Item{ID: "w2", Kind: fabula.KindWeapon},
			wantErr: "weapon has no roll configuration",
		},
		{
			name: "spell uses roll info",
			item: &fabula.Item{ID: "s1", Kind: fabula.KindSpell, Ability: &fabula.AbilityData{RollInfo: spellRoll}},
			want: spellRoll,
		},
		{
			name:    "skill without roll info is invalid",
			item:    &fabula.Item{ID: "k1", Kind: fabula.KindSkill, Ability: &fabula.AbilityData{}},
			wantErr: "ability has no roll info",
		},
		{
			name:    "other items cannot roll",
			item:    &fabula.Item{ID: "o1", Kind: fabula.KindOther},
			wantErr: "item kind cannot be rolled",
		},
		{
			name: "unknown attribute is invalid",
			item: &fabula.Item{ID: "w3", Kind: fabula.KindWeapon, Weapon: &fabula.WeaponData{Roll: fabula.RollConfig{
				PrimaryAttribute:   "luck",
				SecondaryAttribute: fabula.AttributeMight,
			}}},
			wantErr: "roll attributes must be set",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := fabula.RollConfigFor(tc.item)
			if tc.wantErr != "" {
				var cfgErr *fabula.InvalidConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestActorAttributeDie(t *testing.T) {
	actor := &fabula.Actor{
		ID: "act_1",
		Attributes: map[fabula.Attribute]int{
			fabula.AttributeDexterity: 8,
			fabula.AttributeInsight:   0,
		},
	}

	size, err := actor.AttributeDie(fabula.AttributeDexterity)
	require.NoError(t, err)
	assert.Equal(t, 8, size)

	for _, attr := range []fabula.Attribute{fabula.AttributeInsight, fabula.AttributeMight} {
		_, err := actor.AttributeDie(attr)
		var missing *fabula.MissingAttributeError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, attr, missing.Attribute)
	}
}

func TestActorEquippedWeaponsKeepsInventoryOrder(t *testing.T) {
	actor := &fabula.Actor{Items: []*fabula.Item{
		{ID: "bow", Kind: fabula.KindWeapon, Equipped: true},
		{ID: "spell", Kind: fabula.KindSpell, Equipped: true},
		{ID: "spare", Kind: fabula.KindWeapon},
		{ID: "dagger", Kind: fabula.KindWeapon, Equipped: true},
	}}

	weapons := actor.EquippedWeapons()
	require.Len(t, weapons, 2)
	assert.Equal(t, "bow", weapons[0].ID)
	assert.Equal(t, "dagger", weapons[1].ID)
}

func TestAlchemyConfigFromName(t *testing.T) {
	testCases := []struct {
		name  string
		rolls int
		trim  bool
	}{
		{"Alchemy", 2, false},
		{"Advanced Alchemy", 3, false},
		{"Superior Alchemy", 4, false},
		{"Superior Alchemy (smart)", 4, true},
		{"Alchemy (smart)", 2, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := fabula.AlchemyConfigFromName(tc.name)
			assert.Equal(t, tc.rolls, cfg.RollCount)
			assert.Equal(t, tc.trim, cfg.Trim)
		})
	}
}

func TestNormalizeAlchemy(t *testing.T) {
	t.Run("fills config from name", func(t *testing.T) {
		item := &fabula.Item{Name: "Advanced Alchemy (smart)", Kind: fabula.KindMiscAbility}
		fabula.NormalizeAlchemy(item)
		require.NotNil(t, item.Ability)
		assert.Equal(t, &fabula.AlchemyConfig{RollCount: 3, Trim: true}, item.Ability.Alchemy)
	})

	t.Run("keeps explicit config", func(t *testing.T) {
		item := &fabula.Item{Name: "Superior Alchemy", Kind: fabula.KindMiscAbility, Ability: &fabula.AbilityData{
			Alchemy: &fabula.AlchemyConfig{RollCount: 2},
		}}
		fabula.NormalizeAlchemy(item)
		assert.Equal(t, 2, item.Ability.Alchemy.RollCount)
	})

	t.Run("ignores non alchemy kinds", func(t *testing.T) {
		item := &fabula.Item{Name: "Superior Alchemy Manual", Kind: fabula.KindOther}
		fabula.NormalizeAlchemy(item)
		assert.Nil(t, item.Ability)

		_, err := fabula.AlchemyConfigFor(item)
		var cfgErr *fabula.InvalidConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestAlchemyConfigForRollCountCap(t *testing.T) {
	item := &fabula.Item{ID: "alc", Name: "Alchemy", Kind: fabula.KindMiscAbility, Ability: &fabula.AbilityData{
		Alchemy: &fabula.AlchemyConfig{RollCount: fabula.MaxAlchemyRolls},
	}}
	cfg, err := fabula.AlchemyConfigFor(item)
	require.NoError(t, err)
	assert.Equal(t, fabula.MaxAlchemyRolls, cfg.RollCount)
	assert.NoError(t, fabula.ValidateAlchemy(&fabula.Actor{ID: "a", Items: []*fabula.Item{item}}))

	item.Ability.Alchemy.RollCount = fabula.MaxAlchemyRolls + 1
	_, err = fabula.AlchemyConfigFor(item)
	var cfgErr *fabula.InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "alc", cfgErr.ItemID)

	err = fabula.ValidateAlchemy(&fabula.Actor{ID: "a", Items: []*fabula.Item{item}})
	assert.ErrorAs(t, err, &cfgErr)
}
