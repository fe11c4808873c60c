package realm

var immortalLevelNames = [LevelsPerRealm]string{"Lower Grade", "Middle Grade", "Upper Grade", "Supreme Grade"}

var supremeLevelNames = [LevelsPerRealm]string{"Initial", "Minor", "Major", "Perfect"}

// table is the ladder in declaration order. Index must match position.
var table = []Realm{
	{
		Index: 0, ID: QiRefining, Name: "Qi Refining", Stage: StageMortal,
		Thresholds: [LevelsPerRealm]int64{100, 300, 600, 1000},
		Bonus:      Bonus{MaxHP: 50, MaxMP: 50, Attack: 5, Defense: 5},
	},
	{
		Index: 1, ID: FoundationEstablishment, Name: "Foundation Establishment", Stage: StageMortal,
		Thresholds: [LevelsPerRealm]int64{2000, 4000, 7000, 10000},
		Bonus:      Bonus{MaxHP: 100, MaxMP: 100, Attack: 10, Defense: 10},
	},
	{
		Index: 2, ID: GoldenCore, Name: "Golden Core", Stage: StageCultivator,
		Thresholds: [LevelsPerRealm]int64{15000, 25000, 40000, 60000},
		Bonus:      Bonus{MaxHP: 200, MaxMP: 200, Attack: 20, Defense: 20},
	},
	{
		Index: 3, ID: NascentSoul, Name: "Nascent Soul", Stage: StageCultivator,
		Thresholds: [LevelsPerRealm]int64{80000, 120000, 180000, 250000},
		Bonus:      Bonus{MaxHP: 400, MaxMP: 400, Attack: 40, Defense: 40},
	},
	{
		Index: 4, ID: SpiritSevering, Name: "Spirit Severing", Stage: StageCultivator,
		Thresholds: [LevelsPerRealm]int64{350000, 500000, 700000, 1000000},
		Bonus:      Bonus{MaxHP: 800, MaxMP: 800, Attack: 80, Defense: 80},
	},
	{
		Index: 5, ID: VoidRefining, Name: "Void Refining", Stage: StagePerfected,
		Thresholds: [LevelsPerRealm]int64{1500000, 2200000, 3000000, 4000000},
		Bonus:      Bonus{MaxHP: 1500, MaxMP: 1500, Attack: 150, Defense: 150},
	},
	{
		Index: 6, ID: BodyIntegration, Name: "Body Integration", Stage: StagePerfected,
		Thresholds: [LevelsPerRealm]int64{5500000, 7500000, 10000000, 13000000},
		Bonus:      Bonus{MaxHP: 3000, MaxMP: 3000, Attack: 300, Defense: 300},
	},
	{
		Index: 7, ID: Mahayana, Name: "Mahayana", Stage: StagePerfected,
		Thresholds: [LevelsPerRealm]int64{18000000, 25000000, 35000000, 50000000},
		Bonus:      Bonus{MaxHP: 6000, MaxMP: 6000, Attack: 600, Defense: 600},
	},
	{
		Index: 8, ID: TribulationTranscendence, Name: "Tribulation Transcendence", Stage: StageImmortal,
		Thresholds: [LevelsPerRealm]int64{70000000, 100000000, 140000000, 200000000},
		Bonus:      Bonus{MaxHP: 12000, MaxMP: 12000, Attack: 1200, Defense: 1200},
	},
	{
		Index: 9, ID: EarthImmortal, Name: "Earth Immortal", Stage: StageImmortal,
		Thresholds: [LevelsPerRealm]int64{300000000, 450000000, 650000000, 1000000000},
		Bonus:      Bonus{MaxHP: 25000, MaxMP: 25000, Attack: 2500, Defense: 2500},
		LevelNames: &immortalLevelNames,
	},
	{
		Index: 10, ID: HeavenImmortal, Name: "Heaven Immortal", Stage: StageImmortal,
		Thresholds: [LevelsPerRealm]int64{1500000000, 2300000000, 3500000000, 5000000000},
		Bonus:      Bonus{MaxHP: 50000, MaxMP: 50000, Attack: 5000, Defense: 5000},
		LevelNames: &immortalLevelNames,
	},
	{
		Index: 11, ID: GoldenImmortal, Name: "Golden Immortal", Stage: StageImmortal,
		Thresholds: [LevelsPerRealm]int64{8000000000, 12000000000, 18000000000, 30000000000},
		Bonus:      Bonus{MaxHP: 100000, MaxMP: 100000, Attack: 10000, Defense: 10000},
		LevelNames: &immortalLevelNames,
	},
	{
		Index: 12, ID: DaluoGoldenImmortal, Name: "Daluo Golden Immortal", Stage: StageSupreme,
		Thresholds: [LevelsPerRealm]int64{50000000000, 80000000000, 120000000000, 200000000000},
		Bonus:      Bonus{MaxHP: 200000, MaxMP: 200000, Attack: 20000, Defense: 20000},
		LevelNames: &supremeLevelNames,
	},
	{
		Index: 13, ID: QuasiSage, Name: "Quasi-Sage", Stage: StageSupreme,
		Thresholds: [LevelsPerRealm]int64{300000000000, 500000000000, 800000000000, 1500000000000},
		Bonus:      Bonus{MaxHP: 500000, MaxMP: 500000, Attack: 50000, Defense: 50000},
		LevelNames: &supremeLevelNames,
	},
	{
		Index: 14, ID: HunyuanSage, Name: "Hunyuan Sage", Stage: StageSupreme,
		Thresholds: [LevelsPerRealm]int64{3000000000000, 6000000000000, 12000000000000, 30000000000000},
		Bonus:      Bonus{MaxHP: 1000000, MaxMP: 1000000, Attack: 100000, Defense: 100000},
		LevelNames: &supremeLevelNames,
	},
}

var byID = indexByID(table)

func indexByID(realms []Realm) map[ID]int {
	m := make(map[ID]int, len(realms))
	for i, r := range realms {
		m[r.ID] = i
	}
	return m
}
