package contract

import "questhive/sdk"

// saveMission persists the encoded mission blob.
func saveMission(m *Mission) {
	sdk.StateSetObject(missionKey(m.ID), string(EncodeMission(m)))
}

// loadMission decodes the stored mission, second return tells existence.
func loadMission(id uint64) (*Mission, bool) {
	ptr := sdk.StateGetObject(missionKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	m, err := DecodeMission([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode mission")
	}
	return m, true
}

// requireMission reverts with NotFound when the id is unknown.
func requireMission(id uint64) *Mission {
	m, ok := loadMission(id)
	if !ok {
		fail(ErrNotFound, "mission not found: "+UInt64ToString(id))
	}
	return m
}

// requireActiveMission additionally rejects deactivated missions.
func requireActiveMission(id uint64) *Mission {
	m := requireMission(id)
	if !m.Active {
		fail(ErrBadState, "mission is deactivated: "+UInt64ToString(id))
	}
	return m
}

// requireMissionOwner loads the mission and checks the sender is its admin.
func requireMissionOwner(id uint64) (*Mission, sdk.Address) {
	m := requireActiveMission(id)
	sender := getSenderAddress()
	if m.Owner != sender && !isContractOwner(sender) {
		fail(ErrUnauthorized, "mission admin only")
	}
	return m, sender
}

// saveApplication persists an application under its mission-scoped key.
func saveApplication(a *Application) {
	sdk.StateSetObject(applicationKey(a.MissionID, a.ID), string(EncodeApplication(a)))
}

// loadApplication decodes the stored application, second return tells existence.
func loadApplication(missionID, appID uint64) (*Application, bool) {
	ptr := sdk.StateGetObject(applicationKey(missionID, appID))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	a, err := DecodeApplication([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode application")
	}
	return a, true
}

// saveInteraction persists an interaction under its mission-scoped key.
func saveInteraction(i *Interaction) {
	sdk.StateSetObject(interactionKey(i.MissionID, i.ID), string(EncodeInteraction(i)))
}

// loadInteraction decodes the stored interaction, second return tells existence.
func loadInteraction(missionID, interactionID uint64) (*Interaction, bool) {
	ptr := sdk.StateGetObject(interactionKey(missionID, interactionID))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	i, err := DecodeInteraction([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode interaction")
	}
	return i, true
}

// hasClaimed answers the address-keyed one-claim rule.
func hasClaimed(missionID uint64, addr sdk.Address) bool {
	ptr := sdk.StateGetObject(claimFlagKey(missionID, addr))
	return ptr != nil && *ptr != ""
}

// markClaimed flips the claim flag. Callers set this before moving funds so a
// reentrant claim observes the post-transition state.
func markClaimed(missionID uint64, addr sdk.Address) {
	sdk.StateSetObject(claimFlagKey(missionID, addr), "1")
}
