// Command pdrouted serves pickup-and-delivery construction over HTTP.
//
// POST /solve takes a raw problem instance as the request body, runs the
// configured number of construction trials, and returns the best routes
// as JSON. GET /healthz reports liveness. Configuration comes from an
// optional YAML file named by PDROUTED_CONFIG; the policy, trials, seed
// and beam shape can be overridden per request via query parameters.
package main

import (
	"bytes"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/katalvlaran/pdroute/construct"
	"github.com/katalvlaran/pdroute/instance"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("pdrouted: %v", err)
	}
	if _, err = parsePolicy(cfg.Policy); err != nil {
		log.Fatalf("pdrouted: %v", err)
	}

	app := newApp(cfg)

	log.Printf("pdrouted: listening on %s", cfg.Listen)
	if err = app.Listen(cfg.Listen); err != nil {
		log.Fatalf("pdrouted: %v", err)
	}
}

// newApp wires the routes onto a fresh fiber app.
func newApp(cfg config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pdrouted",
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Post("/solve", solveHandler(cfg))

	return app
}

// solveResponse is the /solve payload: the best solution found plus the
// effective run parameters, so callers can tell what actually ran.
type solveResponse struct {
	Policy   string            `json:"policy"`
	Trials   int               `json:"trials"`
	Cost     float64           `json:"cost"`
	Routes   []construct.Route `json:"routes"`
	Unserved []int             `json:"unserved,omitempty"`
}

func solveHandler(cfg config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(bytes.TrimSpace(body)) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "empty instance body")
		}

		policyName := c.Query("policy", cfg.Policy)
		policy, err := parsePolicy(policyName)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		trials := c.QueryInt("trials", cfg.Trials)
		opts := construct.Options{
			Policy:    policy,
			Seed:      int64(c.QueryInt("seed", int(cfg.Seed))),
			BeamWidth: c.QueryInt("beam_width", cfg.BeamWidth),
			BeamDepth: c.QueryInt("beam_depth", cfg.BeamDepth),
			TimeLimit: time.Duration(cfg.TimeLimitMS) * time.Millisecond,
		}

		problem, err := instance.Parse(bytes.NewReader(body))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		solver, err := construct.NewSolverFromProblem(problem.Vehicles, problem.Calls, opts)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sol, err := solver.MultiSolve(trials)
		if err != nil {
			if errors.Is(err, construct.ErrNoTrials) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(solveResponse{
			Policy:   policy.String(),
			Trials:   trials,
			Cost:     sol.Cost,
			Routes:   sol.Routes,
			Unserved: sol.Unserved,
		})
	}
}
