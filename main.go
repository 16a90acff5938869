package main

import (
	"camp-signup-system/cmd/server"
	"camp-signup-system/internal/global/database"
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "配置文件路径（yaml），默认查找 ./config.yaml")
	seed := pflag.Bool("seed", false, "写入示例营员和活动后退出")
	pflag.Parse()

	server.Init(*configPath)

	if *seed {
		seeded, err := server.Seed(context.Background(), database.DB)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed failed:", err)
			os.Exit(1)
		}
		if seeded {
			fmt.Println("seed data inserted")
		} else {
			fmt.Println("activities already exist, nothing to seed")
		}
		return
	}

	server.Run()
}
