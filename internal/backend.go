package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/api"
	"github.com/markusressel/notebot/internal/arm"
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/intake"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/persistence"
	"github.com/markusressel/notebot/internal/scheduler"
	"github.com/markusressel/notebot/internal/sensors"
	"github.com/markusressel/notebot/internal/shooter"
	"github.com/markusressel/notebot/internal/statistics"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/vision"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

func RunDaemon() {
	config := &configuration.CurrentConfig

	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize preferences at %s: %v", config.DbPath, err)
	}

	robot, sched, err := InitializeObjects(config, pers)
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}
	registerCollectors(robot, sched)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === Scheduler
		g.Add(func() error {
			err := sched.Run(ctx)
			ui.Info("Scheduler stopped.")
			return err
		}, func(err error) {
			cancel()
		})
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(robot, prometheus.DefaultRegisterer)
		addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
		g.Add(func() error {
			ui.Info("Starting REST api server at %s", addr)
			if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(err error) {
			shutdownEcho("REST api", rest)
		})
	}
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		port := config.Statistics.Port
		if port <= 0 || port >= 65535 {
			port = 9000
		}
		metrics := api.CreateWebserver()
		metrics.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
		addr := fmt.Sprintf(":%d", port)
		g.Add(func() error {
			ui.Info("Starting statistics server at %s", addr)
			if err := metrics.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
				return err
			}
			return nil
		}, func(err error) {
			shutdownEcho("statistics", metrics)
		})
	}
	if config.Profiling.Enabled {
		// === pprof
		addr := fmt.Sprintf("%s:%d", config.Profiling.Host, config.Profiling.Port)
		server := &http.Server{Addr: addr, Handler: http.DefaultServeMux}
		g.Add(func() error {
			ui.Info("Starting profiling server at http://%s/debug/pprof/", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			_ = server.Shutdown(timeoutCtx)
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

func shutdownEcho(name string, server *echo.Echo) {
	ui.Info("Stopping %s server...", name)
	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()
	if err := server.Shutdown(timeoutCtx); err != nil {
		ui.Warning("Error stopping %s server: %v", name, err)
	}
}

// InitializeObjects creates all devices and subsystems described by config
// and registers the subsystems with a new scheduler.
func InitializeObjects(config *configuration.Configuration, pers persistence.Preferences) (api.Robot, *scheduler.Scheduler, error) {
	dashboard := tuning.NewDashboard()
	robot := api.Robot{Dashboard: dashboard}
	sched := scheduler.NewScheduler(config.TickRate, dashboard)

	armMotor, err := createMotor(config.Arm.Motor)
	if err != nil {
		return robot, nil, err
	}
	var handlerMotor motors.Motor
	if config.Arm.HandlerMotor != nil {
		handlerMotor, err = createMotor(*config.Arm.HandlerMotor)
		if err != nil {
			return robot, nil, err
		}
	}
	encoder, err := sensors.NewEncoder(config.Arm.Encoder)
	if err != nil {
		return robot, nil, fmt.Errorf("arm: %w", err)
	}
	robot.Arm, err = arm.NewArm(config.Arm, armMotor, handlerMotor, encoder)
	if err != nil {
		return robot, nil, err
	}
	sched.Register(robot.Arm)

	if config.Intake != nil {
		motor, err := createMotor(config.Intake.Motor)
		if err != nil {
			return robot, nil, err
		}
		beamBreak, err := sensors.NewDigitalInput(config.Intake.BeamBreak)
		if err != nil {
			return robot, nil, fmt.Errorf("intake: %w", err)
		}
		robot.Intake, err = intake.NewIntake(*config.Intake, motor, beamBreak)
		if err != nil {
			return robot, nil, err
		}
		sched.Register(robot.Intake)
	}

	if config.Shooter != nil {
		motor, err := createMotor(config.Shooter.Motor)
		if err != nil {
			return robot, nil, err
		}
		robot.Shooter, err = shooter.NewShooter(*config.Shooter, motor, pers)
		if err != nil {
			return robot, nil, err
		}
		sched.Register(robot.Shooter)
	}

	if config.Vision != nil {
		camera, err := vision.NewCamera(config.Vision.Camera)
		if err != nil {
			return robot, nil, fmt.Errorf("vision: %w", err)
		}
		robot.Vision = vision.NewVision(camera)
	}

	return robot, sched, nil
}

// createMotor creates a motor and makes it available in motors.MotorMap
func createMotor(config configuration.MotorConfig) (motors.Motor, error) {
	if motor, exists := motors.MotorMap.Get(config.ID); exists {
		return nil, fmt.Errorf("duplicate motor id detected: %s", motor.GetId())
	}
	motor, err := motors.NewMotor(config)
	if err != nil {
		return nil, err
	}
	motors.MotorMap.Set(config.ID, motor)
	return motor, nil
}

func registerCollectors(robot api.Robot, sched *scheduler.Scheduler) {
	statistics.Register(statistics.NewSchedulerCollector(sched))
	statistics.Register(statistics.NewMotorCollector())
	statistics.Register(statistics.NewArmCollector(robot.Arm))
	if robot.Intake != nil {
		statistics.Register(statistics.NewIntakeCollector(robot.Intake))
	}
	if robot.Shooter != nil {
		statistics.Register(statistics.NewShooterCollector(robot.Shooter))
	}
}
