// Package ebitenhost runs a glide Engine inside an Ebitengine window.
//
// [Host] implements [ebiten.Game]. Each Update it polls the mouse, touches,
// and wheel, forwards them to the engine as pointer and wheel events, and
// pumps the engine's frame queue. Layout changes are reported as resizes.
// Draw hands the current transform to a [glide.WorldRenderer] and the engine
// status to a [glide.HudRenderer].
//
//	host, err := ebitenhost.New(glide.Config{}, ebitenhost.Options{
//		World: glide.WorldRendererFunc[*ebiten.Image](drawGarden),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(ebitenhost.Run(host, ebitenhost.RunConfig{Title: "garden", Width: 1024, Height: 768}))
package ebitenhost
