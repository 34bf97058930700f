// Command interpret 在本地运行机器人响应流水线，便于调试分类、情绪与舵机规则。
//
//	interpret --prompt "Please look right" --text "Sure, turning right now!" --servo 45
//	interpret --prompt "Who are you?" --live
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/config"
	model "github.com/zhouzirui/servo-bot/backend/internal/model/robot"
	"github.com/zhouzirui/servo-bot/backend/internal/service/ai"
	"github.com/zhouzirui/servo-bot/backend/internal/service/robot"
	"github.com/zhouzirui/servo-bot/backend/pkg/logger"
)

type options struct {
	prompt  string
	text    string
	robotID string
	servo   int
	live    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "interpret",
		Short: "Interpret a prompt and reply into a robot response",
		Long: `Runs prompt classification, emotion tagging and servo movement resolution
on a prompt and a generated reply, and prints the resulting robot response as JSON.
With --live the reply is produced by the configured generation gateway instead of --text.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "prompt sent by the robot (required)")
	cmd.Flags().StringVar(&opts.text, "text", "", "generated reply to interpret (ignored with --live)")
	cmd.Flags().StringVar(&opts.robotID, "robot-id", "cli", "robot identifier")
	cmd.Flags().IntVar(&opts.servo, "servo", model.DefaultServoPosition, "current servo position in degrees")
	cmd.Flags().BoolVar(&opts.live, "live", false, "call the configured generation gateway")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	var (
		resp model.Response
		err  error
	)
	if opts.live {
		resp, err = respondLive(ctx, opts)
		if err != nil {
			return err
		}
	} else {
		resp = robot.Interpret(opts.robotID, opts.servo, opts.prompt, opts.text, time.Now())
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func respondLive(ctx context.Context, opts *options) (model.Response, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return model.Response{}, fmt.Errorf("load configuration: %w", err)
	}
	zl, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		return model.Response{}, fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	generator, err := ai.NewGenerator(ctx, cfg, zl.Named("ai"))
	if err != nil {
		return model.Response{}, fmt.Errorf("init %s gateway: %w", cfg.Generation.Provider, err)
	}

	svc := robot.NewService(generator, cfg.Generation.Timeout, zl.Named("robot"))
	servo := opts.servo
	resp, err := svc.Respond(ctx, model.GenerateRequest{
		Prompt:        opts.prompt,
		RobotID:       opts.robotID,
		ServoPosition: &servo,
	})
	if err != nil {
		zl.Error("live generation failed", zap.Error(err))
		return model.Response{}, err
	}
	return resp, nil
}
