package game

// Director plays a game on behalf of the user
type Director interface {
	/**
	 * Initialize the director for a freshly started game
	 */
	Init(*Engine)

	/**
	 * Perform a single action, returning false if there was nothing left to do
	 */
	Act() bool
}

// Direct lets the director act until the game ends or it gives up, returning
// the number of actions taken
func Direct(engine *Engine, director Director) int {
	director.Init(engine)

	numActions := 0
	for engine.canPlay() && director.Act() {
		numActions++
	}

	engine.log().WithField("actions", numActions).Debug("director finished")
	return numActions
}
