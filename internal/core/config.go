package core

// RuntimeConfig describes the environment a session runs in.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the view
	ScreenH  int   // Rows available to the view
	TickRate int   // Ticks per second; 0 falls back to 60
	Seed     int64 // Random level and backdrop seed; 0 picks one from the clock
}

// GameState is the snapshot of a level the front ends draw their HUD and
// dialogs from.
type GameState struct {
	Score       int   // Session score, including the current level once won
	LevelScore  int   // Points awarded for the won level, 0 until then
	RocketsUsed int   // Valid shots fired on this level
	Balloons    int   // Balloons still on the plane
	Flying      bool  // A rocket is following the formula
	Won         bool  // No balloons are left
	Err         error // Why the last flight stopped early, if it did
}

// StepResult reports what one tick changed.
type StepResult struct {
	State GameState
	Hits  int  // Balloons downgraded this tick
	Pops  int  // Balloons removed this tick
	Ended bool // The flight landed or stopped this tick
}
