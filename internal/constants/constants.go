package constants

// Centralized constants for env keys, routes, JSON keys and log fields.
const (
	// Environment variable keys
	EnvAddr       = "CARD_BATTLE_ADDR"
	EnvDBPath     = "CARD_BATTLE_DB"
	EnvConfigPath = "CARD_BATTLE_CONFIG"
	EnvSessionTTL = "CARD_BATTLE_SESSION_TTL"
	EnvMemory     = "CARD_BATTLE_MEMORY"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// ProgressNamespace prefixes every profile key in the progress store.
	ProgressNamespace = "card-battle-progress"

	// BattleLogTail is how many log lines a snapshot carries.
	BattleLogTail = 50
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteCatalog         = "/catalog"
	RouteSessions        = "/sessions"
	RouteSessionByID     = "/sessions/:sessionID"
	RouteSessionSelect   = "/sessions/:sessionID/select"
	RouteSessionRetrieve = "/sessions/:sessionID/retrieve"
	RouteSessionConfirm  = "/sessions/:sessionID/confirm"
	RouteSessionReset    = "/sessions/:sessionID/reset"
	RouteSessionStream   = "/sessions/:sessionID/stream"
	RouteProgress        = "/progress/:profile"
	RouteVersion         = "/version"

	ParamSessionID = "sessionID"
	ParamProfile   = "profile"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidSessionID    = "Invalid session ID"
	ErrSessionNotFound     = "Session not found"
	ErrSessionOver         = "Session is over"
	ErrWrongPhase          = "Action not allowed in the current phase"
	ErrIllegalSelection    = "Illegal card selection"
	ErrUnknownStage        = "Unknown stage"
	ErrUnknownZone         = "Zone must be king or support"
	ErrZoneEmpty           = "Zone is empty"
	ErrFailedCreateSession = "Failed to create session"
	ErrFailedConfirmTurn   = "Failed to confirm turn"
	ErrFailedResetSession  = "Failed to reset session"
	ErrFailedFetchProgress = "Failed to fetch progress"
	ErrFailedUpgradeStream = "Failed to open session stream"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldProfile   = "profile"
	LogFieldStage     = "stage"
	LogFieldPhase     = "phase"
	LogFieldTurn      = "turn"
	LogFieldWinner    = "winner"
	LogFieldSource    = "source"
	LogFieldName      = "name"
	LogFieldKey       = "key"
	LogFieldAddr      = "addr"
	LogFieldPath      = "path"
	LogFieldCount     = "count"
)
