package app

import (
	"fmt"

	"InfiniteCity/cliente/internal/render"
	"InfiniteCity/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(render.SkyColor)

	a.drawScene()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}

	rl.EndDrawing()
}

// camera3D monta a câmera raylib a partir da pose do controlador.
func (a *App) camera3D() rl.Camera3D {
	pose := a.City.Cam.Pose()
	return render.CameraFromPose(pose.Position, pose.Target, pose.Up, a.Config.FOV)
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	cam := a.camera3D()
	rl.BeginMode3D(cam)
	if a.renderer != nil {
		a.renderer.Draw(cam, a.City.Scene, a.Config.ShowGrid)
	}
	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(230)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	avg, worst := util.FrameStats(a.frameTimes)
	rl.DrawText(fmt.Sprintf("%.1f/%.1f ms", avg*1000, worst*1000), x+100, y+14, 12, rl.Gray)

	snap := a.City.Cam.Snapshot()
	rl.DrawText(fmt.Sprintf("Câmera: %s", snap.Scheme), x+200, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Localização
	rl.DrawText("LOCALIZAÇÃO", x+10, y+45, 12, rl.Gray)
	p := snap.Position
	rl.DrawText(fmt.Sprintf("Posição: (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z()), x+10, y+60, 16, rl.White)
	cell := util.WorldToGrid(p, a.Config.BlockSize)
	rl.DrawText(fmt.Sprintf("Célula: %s", cell), x+10, y+80, 14, rl.LightGray)

	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Streaming
	st := a.City.Streamer.Stats()
	added, removed := a.City.Scene.Churn()
	rl.DrawText("STREAMING", x+10, y+110, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Tiles ativos: %d (r=%d, %s)", st.Active, a.Config.RenderDistance, a.Config.StreamPolicy),
		x+10, y+125, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Updates: %d  Ignorados: %d", st.Updates, st.Skipped), x+10, y+142, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Nós criados: %d  removidos: %d", added, removed), x+10, y+159, 14, rl.LightGray)
	if a.renderer != nil {
		rl.DrawText(fmt.Sprintf("Desenhados: %d  Sem modelo: %d", a.renderer.Stats.Drawn, a.renderer.Stats.Skipped),
			x+10, y+176, 14, rl.LightGray)
	}

	rl.DrawLine(x+10, y+195, x+width-10, y+195, rl.NewColor(100, 100, 100, 100))
	rl.DrawText("Arrastar: Mover | Scroll: Zoom | C: Câmera | R: Reset", x+10, y+205, 12, rl.SkyBlue)

	title := "InfiniteCity v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(250)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "PAUSADO"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.togglePause()
	}
	if a.drawButton(buttonX, panelY+150, buttonWidth, buttonHeight, "SAIR", rl.Red) {
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
