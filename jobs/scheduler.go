package jobs

import (
	"time"

	"playwin/database"
	"playwin/services"
	"playwin/utils/logger"
)

const (
	windowInterval = 30 * time.Minute
	sweepInterval  = 5 * time.Minute
)

// StartGameScheduler runs the two lifecycle triggers: the window opener at
// each half-hour boundary and the settlement sweep every five minutes.
func StartGameScheduler() {
	go windowOpener()
	go settlementSweeper()
	logger.Info("game scheduler started")
}

func windowOpener() {
	// catch up immediately so a restart mid-window still has a game open
	openCurrentWindow()
	for {
		now := time.Now()
		next := now.Truncate(windowInterval).Add(windowInterval)
		time.Sleep(time.Until(next))
		openCurrentWindow()
	}
}

func openCurrentWindow() {
	game, err := services.OpenCurrentWindow(database.DB, time.Now())
	if err != nil {
		logger.Errorf("failed to open game window: %v", err)
		return
	}
	if game != nil {
		logger.Infof("game created for window %s", game.TimeWindow)
	}
}

func settlementSweeper() {
	ticker := time.NewTicker(sweepInterval)
	for {
		<-ticker.C
		settled, err := services.SweepExpiredGames(database.DB, time.Now())
		if err != nil {
			logger.Errorf("settlement sweep failed: %v", err)
			continue
		}
		if settled > 0 {
			logger.Infof("settlement sweep settled %d games", settled)
		}
	}
}
