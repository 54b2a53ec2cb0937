package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"billtracker/config"
	"billtracker/database"
	"billtracker/logging"
	"billtracker/middleware"
	"billtracker/router"
)

// @title 账单分配与投资测算 API
// @version 1.0
// @description 按月登记收入来源，批量分配账单到有余额的收入来源，并按阶梯利率测算投资复投收益
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("billtracker v1.0.0")
		return
	}

	logging.Setup("")

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		slog.Error("加载配置失败", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		slog.Info("命令行指定端口", "port", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		slog.Error("数据库初始化失败", "error", err)
		os.Exit(1)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	slog.Info("服务已启动",
		"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port),
		"api", fmt.Sprintf("http://localhost%s/api/v1/", cfg.Server.Port),
	)

	if err := r.Run(cfg.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
		os.Exit(1)
	}
}
