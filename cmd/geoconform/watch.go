package main

import (
	"github.com/fsnotify/fsnotify"
)

// WatchConfig re-runs the suite whenever the config file changes. Meant
// for the serve mode, where the summary page tracks the latest run.
func (app *App) WatchConfig(name string) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		app.logger.Error("error creating watcher: " + err.Error())

		return
	}

	defer w.Close()

	if err := w.Add(name); err != nil {
		app.logger.Error("error watching " + name + ": " + err.Error())

		return
	}

	app.logger.Info("watching " + name)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				app.logger.Info("config changed, re-running checks")
				app.cfg.Load(name)
				app.RunSuite()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			app.logger.Warn("watch error: " + err.Error())
		}
	}
}
