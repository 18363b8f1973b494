package contract

// RegistryList walks every campaign ever created and returns the active ones
// as summaries. Mission ids are dense starting at 1, so a plain scan works.
func RegistryList(payload *string) *string {
	requireInitialized()

	total := getCount(MissionsCount)
	missions := make([]MissionSummary, 0, total)
	for id := uint64(1); id <= total; id++ {
		m, ok := loadMission(id)
		if !ok || !m.Active {
			continue
		}
		missions = append(missions, MissionSummary{
			ID:          m.ID,
			Name:        m.Name,
			RewardMode:  m.RewardMode.String(),
			Active:      m.Active,
			Claimable:   m.Claimable,
			Deposited:   AmountToFloat(m.Deposited),
			Distributed: AmountToFloat(m.Distributed),
			ClaimCount:  m.ClaimCount,
		})
	}
	return renderView(RegistryListView{Missions: missions})
}

// RegistryStats aggregates the campaign counters across active and retired
// missions alike.
func RegistryStats(payload *string) *string {
	requireInitialized()

	view := RegistryStatsView{}
	total := getCount(MissionsCount)
	deposited := Amount(0)
	distributed := Amount(0)
	for id := uint64(1); id <= total; id++ {
		m, ok := loadMission(id)
		if !ok {
			continue
		}
		view.Missions++
		if m.Active {
			view.ActiveMissions++
		}
		deposited += m.Deposited
		distributed += m.Distributed
		view.TotalClaims += m.ClaimCount
	}
	view.TotalDeposited = AmountToFloat(deposited)
	view.TotalDistributed = AmountToFloat(distributed)
	return renderView(view)
}
