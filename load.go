package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spaghettifunk/donut/engine/assets"
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/systems"
)

func loadCommand(cfg *core.Config, files []string, out reportOptions) error {
	if len(files) == 0 {
		for _, f := range cfg.Assets.Files {
			if !filepath.IsAbs(f) {
				f = filepath.Join(cfg.Assets.Root, f)
			}
			files = append(files, f)
		}
	}
	if len(files) == 0 && !cfg.Assets.Watch {
		return fmt.Errorf("no files to load")
	}

	rmConfig := &systems.ResourceManagerConfig{}
	if cfg.Sets.Seed != 0 {
		rmConfig.Rand = systems.NewSeededRand(cfg.Sets.Seed)
	}
	rm := systems.NewResourceManager(rmConfig)

	var js *systems.JobSystem
	if cfg.Assets.Workers > 1 {
		var err error
		if js, err = systems.NewJobSystem(cfg.Assets.Workers, cfg.Assets.Workers); err != nil {
			return err
		}
		defer js.Shutdown()
	}
	loader := assets.NewAssetLoader(nil, js, nil)

	checksums := make(map[string]uint64, len(files))
	for _, path := range files {
		f, err := loader.LoadFile(path)
		if f == nil {
			// Unreadable or corrupt files only lose their own resources.
			core.LogError("%s", err)
			continue
		}
		checksums[path] = f.Checksum
		rm.LoadAssets(assets.Assets(f.Decoded))
	}

	if err := report(os.Stdout, rm, loader, out); err != nil {
		return err
	}

	if !cfg.Assets.Watch {
		return nil
	}
	return watch(cfg.Assets.Root, rm, loader, checksums, out)
}

func watch(root string, rm *systems.ResourceManager, loader *assets.AssetLoader, loaded map[string]uint64, out reportOptions) error {
	w, err := assets.NewWatcher(loader)
	if err != nil {
		return err
	}
	defer w.Close()

	for path, sum := range loaded {
		w.Seen(path, sum)
	}

	if err := w.Watch(root); err != nil {
		return err
	}
	core.LogInfo("watching %s for changes", root)

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	for {
		select {
		case r, ok := <-w.Reloads():
			if !ok {
				return nil
			}
			if r.File == nil {
				core.LogError("%s", r.Err)
				continue
			}
			n := rm.LoadAssets(assets.Assets(r.File.Decoded))
			core.LogInfo("reloaded %d resources from %s", n, r.Path)
			if err := report(os.Stdout, rm, loader, out); err != nil {
				return err
			}
		case <-sigCh:
			return nil
		}
	}
}
