package systems

import (
	"context"
	"log"

	"github.com/automoto/showcase/components"
	"github.com/automoto/showcase/page"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestPage shows the page for key. A cached page fades in at once;
// otherwise it is loaded first and the loading spinner covers the wait.
// Unknown keys resolve to the fallback page.
func RequestPage(w donburi.World, key string) {
	pg := pagesOf(w)
	if pg == nil {
		return
	}
	key = pg.Registry.Resolve(key)
	if _, ok := pg.Cache[key]; ok {
		showPage(w, pg, key)
		return
	}
	if pg.Loading[key] {
		return
	}

	p := pg.Registry.New(key, pg.Runtime)
	pg.Loading[key] = true
	log.Printf("[pages] loading %s", key)

	load := pg.Load
	if load == nil {
		load = loadAsync
	}
	results := pg.Results
	load(p, func(err error) {
		results.Push(components.PageLoad{Key: key, Page: p, Err: err})
	})
}

func loadAsync(p *page.Page, done func(error)) {
	go func() {
		done(p.Load(context.Background()))
	}()
}

// UpdatePageLoads builds the pages whose textures finished loading, caches
// them and starts the fade. A failed page is not cached, so asking for it
// again retries.
func UpdatePageLoads(ecs *ecs.ECS) {
	pg := pagesOf(ecs.World)
	// a fallback request may finish at once and queue another result
	for done := pg.Results.Drain(); len(done) > 0; done = pg.Results.Drain() {
		for _, r := range done {
			applyLoad(ecs.World, pg, r)
		}
	}
}

func applyLoad(w donburi.World, pg *components.PagesData, r components.PageLoad) {
	delete(pg.Loading, r.Key)

	err := r.Err
	if err == nil {
		err = r.Page.Build()
	}
	if err != nil {
		log.Printf("Warning: [pages] could not load %s: %v", r.Key, err)
		fallback := pg.Registry.Fallback()
		if _, ok := pg.Fade.Current(); !ok && r.Key != fallback {
			RequestPage(w, fallback)
		}
		return
	}

	pg.Cache[r.Key] = r.Page
	showPage(w, pg, r.Key)
}

// showPage asks the fade for key. The very first page is attached at once.
func showPage(w donburi.World, pg *components.PagesData, key string) {
	if pg.Fade.Request(key) {
		attachPage(w, key)
	}
}
