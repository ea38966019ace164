package game

type Director interface {
	/**
	 * Initialize the director for a freshly created board
	 */
	Start(*Board)

	/**
	 * Choose the next tile to click, or report there is nothing to click yet
	 */
	Act() (*Tile, bool)

	/**
	 * Stop acting; the board has ended
	 */
	End()
}
