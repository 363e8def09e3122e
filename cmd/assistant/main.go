// File: cmd/assistant/main.go

// assistant is the terminal client for the 华夏历史 AI chat: a REPL that
// talks to the platform API and keeps conversation history locally.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/huaxia-history/go-huaxia/internal/api"
	"github.com/huaxia-history/go-huaxia/internal/config"
	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/export"
	"github.com/huaxia-history/go-huaxia/internal/services"
	"github.com/huaxia-history/go-huaxia/internal/services/account"
	"github.com/huaxia-history/go-huaxia/internal/services/ai"
	"github.com/huaxia-history/go-huaxia/internal/services/chat"
	"github.com/huaxia-history/go-huaxia/internal/services/session"
	"github.com/huaxia-history/go-huaxia/internal/storage"
)

var suggestedQuestions = []string{
	"秦始皇为什么要统一六国？",
	"唐朝为什么被称为盛世？",
	"丝绸之路的历史意义是什么？",
	"明朝郑和下西洋有什么影响？",
}

type app struct {
	sessions     *session.Store
	orchestrator *chat.Orchestrator
	accounts     *account.Service
	platform     *api.Client

	// closed by OnFinish after each turn
	finished chan struct{}
	printed  string
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("assistant")

	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "无法创建数据目录: %v\n", err)
		os.Exit(1)
	}
	kv, err := storage.NewSQLiteStore(cfg.StoragePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法打开本地存储: %v\n", err)
		os.Exit(1)
	}

	creds := account.NewCredentials(kv, logger)
	platform := api.NewClient(cfg.APIBaseURL, creds.Token, logger)
	accounts := account.NewService(platform, creds, logger)

	streamClient := ai.NewClient(ai.DefaultConfig(cfg.APIBaseURL), creds.Token, logger)
	sessions := session.NewStore(kv, logger)
	orchestrator := chat.NewOrchestrator(chat.DefaultConfig(), sessions, streamClient, logger)

	a := &app{
		sessions:     sessions,
		orchestrator: orchestrator,
		accounts:     accounts,
		platform:     platform,
		finished:     make(chan struct{}, 1),
	}

	orchestrator.OnDraft = a.printDraft
	orchestrator.OnFinish = func(string, bool) {
		a.finished <- struct{}{}
	}

	// Ctrl+C during a streaming reply cancels it; at the prompt it exits.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		for range sigCh {
			if orchestrator.State() == chat.StateIdle {
				fmt.Println("\n再见！")
				os.Exit(0)
			}
			orchestrator.Cancel()
		}
	}()

	a.printWelcome()
	a.repl()
}

func (a *app) printWelcome() {
	fmt.Println("华夏历史 AI 助手")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Println(domain.Greeting)
	fmt.Println()
	fmt.Println("推荐问题:")
	for i, q := range suggestedQuestions {
		fmt.Printf("  %d. %s\n", i+1, q)
	}
	fmt.Println()
	fmt.Println("输入问题开始对话，/help 查看命令。")
}

func (a *app) repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if !a.runCommand(line) {
				return
			}
			continue
		}

		// Typing the number of a suggested question asks it.
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(suggestedQuestions) {
			line = suggestedQuestions[n-1]
			fmt.Printf("问题: %s\n", line)
		}

		a.ask(line)
	}
}

func (a *app) ask(text string) {
	a.printed = ""
	if !a.orchestrator.Send(text) {
		fmt.Println("当前无法发送，请稍候。")
		return
	}
	<-a.finished
	fmt.Println()
}

// printDraft writes only the part of the draft not shown yet. When
// normalization rewrites earlier text the whole draft is reprinted.
func (a *app) printDraft(rendered string) {
	if strings.HasPrefix(rendered, a.printed) {
		fmt.Print(rendered[len(a.printed):])
	} else {
		fmt.Print("\n" + rendered)
	}
	a.printed = rendered
}

// runCommand executes one slash command; returns false to quit the REPL.
func (a *app) runCommand(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		fmt.Println("再见！")
		return false
	case "/help":
		a.printHelp()
	case "/new":
		s := a.sessions.CreateSession()
		fmt.Printf("已创建新对话: %s\n", s.Title)
	case "/list":
		a.listSessions()
	case "/use":
		a.switchSession(args)
	case "/delete":
		if len(args) != 1 {
			fmt.Println("用法: /delete <编号>")
			return true
		}
		if s := a.sessionByIndex(args[0]); s != nil {
			a.sessions.DeleteSession(s.ID)
			fmt.Printf("已删除对话: %s\n", s.Title)
		}
	case "/clear":
		a.sessions.ClearAllSessions()
		fmt.Println("已清空全部对话。")
	case "/export":
		a.exportSession(args)
	case "/login":
		a.login(args)
	case "/register":
		a.register(args)
	case "/logout":
		a.accounts.Logout()
		fmt.Println("已退出登录。")
	case "/dynasties":
		a.showDynasties()
	case "/figures":
		a.showFigures()
	case "/events":
		a.showEvents()
	default:
		fmt.Printf("未知命令 %s，/help 查看命令。\n", cmd)
	}
	return true
}

func (a *app) printHelp() {
	fmt.Print(`命令:
  /new               新建对话
  /list              列出所有对话
  /use <编号>        切换到某个对话
  /delete <编号>     删除某个对话
  /clear             清空全部对话
  /export <格式>     导出当前对话 (md/json/yaml/html)
  /login <用户> <密码>    登录
  /register <用户> <密码> [邮箱]  注册
  /logout            退出登录
  /dynasties         朝代列表
  /figures           随机历史人物
  /events            历史事件列表
  /quit              退出
`)
}

func (a *app) listSessions() {
	all := a.sessions.Sessions()
	if len(all) == 0 {
		fmt.Println("暂无对话。")
		return
	}
	currentID := a.sessions.CurrentID()
	for i, s := range all {
		marker := "  "
		if s.ID == currentID {
			marker = "* "
		}
		updated := time.UnixMilli(s.UpdatedAt).Format("01-02 15:04")
		fmt.Printf("%s%2d. %s (%d条, %s)\n", marker, i+1, s.Title, len(s.Messages), updated)
	}
}

func (a *app) sessionByIndex(arg string) *domain.ChatSession {
	all := a.sessions.Sessions()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(all) {
		fmt.Println("无效的对话编号，/list 查看编号。")
		return nil
	}
	return &all[n-1]
}

func (a *app) switchSession(args []string) {
	if len(args) != 1 {
		fmt.Println("用法: /use <编号>")
		return
	}
	s := a.sessionByIndex(args[0])
	if s == nil {
		return
	}
	a.sessions.SwitchSession(s.ID)
	fmt.Printf("已切换到: %s\n", s.Title)
	for _, m := range s.Messages {
		label := "用户"
		if m.Role == domain.RoleAssistant {
			label = "AI助手"
		}
		fmt.Printf("\n[%s] %s\n", label, m.Content)
	}
}

func (a *app) exportSession(args []string) {
	if len(args) < 1 {
		fmt.Println("用法: /export <md|json|yaml|html> [文件名]")
		return
	}
	current := a.sessions.CurrentSession()
	if current == nil {
		fmt.Println("暂无对话可导出。")
		return
	}
	exporter, err := export.NewExporter(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	name := fmt.Sprintf("chat-%s.%s", current.ID, exporter.Extension())
	if len(args) > 1 {
		name = args[1]
	}
	f, err := os.Create(name)
	if err != nil {
		fmt.Printf("无法创建文件: %v\n", err)
		return
	}
	defer f.Close()

	if err := exporter.Export(current, f); err != nil {
		fmt.Printf("导出失败: %v\n", err)
		return
	}
	fmt.Printf("已导出到 %s\n", name)
}

func (a *app) login(args []string) {
	if len(args) != 2 {
		fmt.Println("用法: /login <用户名> <密码>")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := a.accounts.Login(ctx, args[0], args[1])
	if err != nil {
		fmt.Printf("登录失败: %v\n", err)
		return
	}
	fmt.Printf("欢迎回来，%s！\n", res.Username)
}

func (a *app) register(args []string) {
	if len(args) < 2 {
		fmt.Println("用法: /register <用户名> <密码> [邮箱]")
		return
	}
	email := ""
	if len(args) > 2 {
		email = args[2]
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := a.accounts.Register(ctx, args[0], args[1], email)
	if err != nil {
		fmt.Printf("注册失败: %v\n", err)
		return
	}
	fmt.Printf("注册成功: %s，现在可以 /login 登录。\n", user.Username)
}

func (a *app) showDynasties() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dynasties, err := a.platform.ListDynasties(ctx)
	if err != nil {
		fmt.Printf("获取朝代失败: %v\n", err)
		return
	}
	for _, d := range dynasties {
		fmt.Printf("  %-4s %s  %s\n", d.Name, d.Period(), d.Capital)
	}
}

func (a *app) showFigures() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	persons, err := a.platform.GetRandomPersons(ctx, 6)
	if err != nil {
		fmt.Printf("获取人物失败: %v\n", err)
		return
	}
	for _, p := range persons {
		dynasty := ""
		if p.DynastyName != nil {
			dynasty = " [" + *p.DynastyName + "]"
		}
		fmt.Printf("  %s%s: %s\n", p.Name, dynasty, p.Summary)
	}
}

func (a *app) showEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events, err := a.platform.ListEvents(ctx)
	if err != nil {
		fmt.Printf("获取事件失败: %v\n", err)
		return
	}
	for _, e := range events {
		year := ""
		if e.StartYear != nil {
			year = api.FormatYear(*e.StartYear) + " "
		}
		summary := ""
		if e.Summary != nil {
			summary = *e.Summary
		}
		fmt.Printf("  %s%s: %s\n", year, e.Title, summary)
	}
}
