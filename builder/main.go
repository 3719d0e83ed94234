package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      InfiniteCity Native Builder     ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	// 2. Compilar Cliente (Raylib exige CGO)
	ldflags := "-s -w"
	if runtime.GOOS == "windows" {
		ldflags = "-extldflags=-static -s -w -H=windowsgui"
	}
	output := "infinitecity"
	if runtime.GOOS == "windows" {
		output += ".exe"
	}
	if err := buildComponent("CLIENTE (CGO + GUI)", "cliente", output, true, ldflags); err != nil {
		fatal(err)
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' a partir da raiz do projeto (pasta assets/).\n"+ColorReset, output)
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/1] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func buildComponent(name, dir, output string, useCgo bool, ldflags string) error {
	fmt.Printf(ColorYellow+"\n[+] Compilando %s..."+ColorReset+"\n", name)

	cgoValue := "0"
	if useCgo {
		cgoValue = "1"
	}
	os.Setenv("CGO_ENABLED", cgoValue)

	args := []string{"build", "-ldflags", ldflags, "-o", output, "./" + dir}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %v", name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", name, output)
	return nil
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	fmt.Println("Pressione Enter para sair...")
	fmt.Scanln()
	os.Exit(1)
}
