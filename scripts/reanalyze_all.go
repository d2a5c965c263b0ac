// 批量重批脚本
//
// 规则引擎调整后用它把存量提交全部重批一遍，覆盖旧的批改结果。
// 与在线重批接口行为一致：只走规则引擎，不重复累计写作进度。
//
// 用法: go run scripts/reanalyze_all.go

package main

import (
	"context"
	"essay_edu_backend/internal/config"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/repository"
	"essay_edu_backend/internal/service"
	"essay_edu_backend/pkg/database"
	"essay_edu_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	submissions := repository.NewSubmissionRepository(db)
	analyses := repository.NewAnalysisRepository(db)
	prompts := repository.NewPromptRepository(db)
	users := repository.NewUserRepository(db)
	progress := service.NewProgressService(repository.NewProgressRepository(db), nil)

	eng := engine.NewEngine(nil, false, 0, logger.Log)
	writing := service.NewWritingService(eng, submissions, analyses, prompts, users, progress)

	ids, err := submissions.AllIDs()
	if err != nil {
		log.Fatalf("读取提交列表失败: %v", err)
	}

	log.Printf("开始重批 %d 篇提交...", len(ids))
	ok, failed := 0, 0
	for _, id := range ids {
		if _, err := writing.ReanalyzeSubmission(context.Background(), 0, model.Admin, id); err != nil {
			log.Printf("重批失败 %s: %v", id, err)
			failed++
			continue
		}
		ok++
	}
	log.Printf("完成！成功 %d 篇，失败 %d 篇", ok, failed)
}
