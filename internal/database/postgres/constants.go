package postgres

// Error Messages - Profile Operations
const (
	ErrMsgFailedToListProfiles      = "failed to list profiles"
	ErrMsgFailedToGetProfile        = "failed to get profile"
	ErrMsgFailedToSaveProfile       = "failed to save profile"
	ErrMsgFailedToDeleteProfile     = "failed to delete profile"
	ErrMsgFailedToMarshalProfile    = "failed to marshal profile"
	ErrMsgFailedToUnmarshalProfile  = "failed to unmarshal profile"
	ErrMsgFailedToGetSettings       = "failed to get settings"
	ErrMsgFailedToSaveSettings      = "failed to save settings"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

const (
	queryListProfiles = `SELECT profile_key FROM farm_profiles ORDER BY profile_key`

	queryGetProfile = `SELECT profile_key, profile_data, updated_at FROM farm_profiles WHERE profile_key = $1`

	queryUpsertProfile = `
INSERT INTO farm_profiles (profile_key, profile_data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (profile_key) DO UPDATE
SET profile_data = EXCLUDED.profile_data, updated_at = EXCLUDED.updated_at`

	queryDeleteProfile = `DELETE FROM farm_profiles WHERE profile_key = $1`

	queryResetLastFarm = `UPDATE planner_settings SET last_farm = $1, updated_at = NOW() WHERE last_farm = $2`

	queryGetSettings = `SELECT last_farm, sort_var, strategy_var FROM planner_settings WHERE settings_id = 1`

	queryUpsertSettings = `
INSERT INTO planner_settings (settings_id, last_farm, sort_var, strategy_var, updated_at)
VALUES (1, $1, $2, $3, NOW())
ON CONFLICT (settings_id) DO UPDATE
SET last_farm = EXCLUDED.last_farm,
    sort_var = EXCLUDED.sort_var,
    strategy_var = EXCLUDED.strategy_var,
    updated_at = EXCLUDED.updated_at`
)
