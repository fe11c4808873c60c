package v1alpha1

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/tribulation"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

func stringField(req *structpb.Struct, key string) string {
	if req == nil {
		return ""
	}
	return req.GetFields()[key].GetStringValue()
}

func boolField(req *structpb.Struct, key string) bool {
	if req == nil {
		return false
	}
	return req.GetFields()[key].GetBoolValue()
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func playerToMap(p *entities.Player) map[string]any {
	if p == nil {
		return nil
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"realm":       string(p.Realm),
		"level":       p.Level,
		"realm_label": p.RealmLabel(),
		"cultivation": p.Cultivation,
		"spirit_root": spiritRootToMap(p.SpiritRoot),
		"attributes": map[string]any{
			"constitution":    p.Attributes.Constitution,
			"spiritual_power": p.Attributes.SpiritualPower,
			"comprehension":   p.Attributes.Comprehension,
			"luck":            p.Attributes.Luck,
			"root_bone":       p.Attributes.RootBone,
		},
		"stats": map[string]any{
			"hp":      p.Stats.HP,
			"max_hp":  p.Stats.MaxHP,
			"mp":      p.Stats.MP,
			"max_mp":  p.Stats.MaxMP,
			"attack":  p.Stats.Attack,
			"defense": p.Stats.Defense,
		},
		"spirit_stones":      p.SpiritStones,
		"last_cultivated_at": p.LastCultivatedAt,
		"version":            p.Version,
	}
}

func spiritRootToMap(root spiritroot.SpiritRoot) map[string]any {
	elements := make([]any, len(root.Elements))
	for i, e := range root.Elements {
		elements[i] = e.String()
	}
	return map[string]any{
		"quality":  root.Quality.String(),
		"type":     root.Type(),
		"label":    root.Label(),
		"elements": elements,
		"value":    root.Value,
		"purity":   root.Purity,
	}
}

func bonusesToMap(b spiritroot.Bonuses) map[string]any {
	combatBonus := make(map[string]any, len(b.Combat))
	for stat, v := range b.Combat {
		combatBonus[string(stat)] = v
	}
	profession := make(map[string]any, len(b.Profession))
	for prof, v := range b.Profession {
		profession[string(prof)] = v
	}
	return map[string]any{
		"cultivation":  b.Cultivation,
		"breakthrough": b.Breakthrough,
		"combat":       combatBonus,
		"profession":   profession,
		"skill":        b.Skill,
	}
}

func positionToMap(p breakthrough.Position) map[string]any {
	return map[string]any{
		"realm": string(p.Realm),
		"level": p.Level,
		"label": p.Label,
		"stage": string(p.Stage),
	}
}

func bonusToMap(b realm.Bonus) map[string]any {
	return map[string]any{
		"max_hp":  b.MaxHP,
		"max_mp":  b.MaxMP,
		"attack":  b.Attack,
		"defense": b.Defense,
	}
}

func factorsToMap(f combat.RateFactors) map[string]any {
	breakdown := make(map[string]any)
	for k, v := range f.Breakdown() {
		breakdown[k] = v
	}
	return map[string]any{
		"base":          f.Base,
		"level_penalty": f.LevelPenalty,
		"realm_penalty": f.RealmPenalty,
		"spirit_bonus":  f.SpiritBonus,
		"purity_bonus":  f.PurityBonus,
		"early_attempt": f.EarlyAttempt,
		"unclamped":     f.Unclamped,
		"final":         f.Final,
		"breakdown":     breakdown,
	}
}

func challengeToMap(c *entities.Challenge) map[string]any {
	if c == nil {
		return nil
	}
	return map[string]any{
		"id":                c.ID,
		"player_id":         c.PlayerID,
		"target_realm":      string(c.TargetRealm),
		"kind":              string(c.Kind),
		"tribulation_level": c.TribulationLevel,
		"difficulty":        string(c.Difficulty),
		"waves":             c.Waves,
		"damage_per_wave":   c.DamagePerWave,
		"status":            string(c.Status),
		"created_at":        c.CreatedAt,
		"expires_at":        c.ExpiresAt,
	}
}

func tribulationSpecToMap(s *tribulation.Spec) map[string]any {
	if s == nil {
		return nil
	}
	kinds := make([]any, len(s.Kinds))
	for i, k := range s.Kinds {
		kinds[i] = string(k)
	}
	return map[string]any{
		"target":      string(s.Target),
		"level":       s.Level,
		"kinds":       kinds,
		"base_damage": s.BaseDamage,
		"waves":       s.Waves,
		"difficulty":  string(s.Difficulty),
	}
}

func attemptToMap(out *breakthrough.AttemptBreakthroughOutput) map[string]any {
	m := map[string]any{
		"state":             string(out.State),
		"success":           out.Success,
		"message":           out.Message,
		"from":              positionToMap(out.From),
		"to":                positionToMap(out.To),
		"rate":              out.Rate,
		"factors":           factorsToMap(out.Factors),
		"attribute_gain":    bonusToMap(out.AttributeGain),
		"cultivation_spent": out.CultivationSpent,
		"cultivation_bonus": out.CultivationBonus,
		"cultivation_lost":  out.CultivationLost,
		"player":            playerToMap(out.Player),
	}
	if out.Ineligibility != nil {
		m["ineligibility"] = map[string]any{
			"reason":   string(out.Ineligibility.Reason),
			"required": out.Ineligibility.Required,
			"current":  out.Ineligibility.Current,
			"deficit":  out.Ineligibility.Deficit,
		}
	}
	if out.Tribulation != nil {
		m["tribulation"] = map[string]any{
			"required":  out.Tribulation.Required,
			"created":   out.Tribulation.Created,
			"challenge": challengeToMap(out.Tribulation.Challenge),
		}
	}
	return m
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
