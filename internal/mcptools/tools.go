package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/internal/session"
	"github.com/katalvlaran/graphtutor/traversal"
	"github.com/katalvlaran/graphtutor/tutorial"
)

// Arguments structs

type NewGraphArgs struct {
	Nodes    int         `json:"nodes,omitempty" jsonschema:"Number of nodes, at most the configured max_nodes; defaults to the configured size"`
	Density  *float64    `json:"density,omitempty" jsonschema:"Edge probability in [0,1] for random graphs"`
	Directed bool        `json:"directed,omitempty" jsonschema:"Build a directed graph"`
	Preset   string      `json:"preset,omitempty" jsonschema:"Named shape: path, cycle, star, complete, binary-tree or grid"`
	Seed     int64       `json:"seed,omitempty" jsonschema:"Seed for a reproducible random graph"`
	Edges    []core.Edge `json:"edges,omitempty" jsonschema:"Explicit edge list; overrides nodes and preset"`
}

type TraverseArgs struct {
	Algorithm string `json:"algorithm,omitempty" jsonschema:"DFS or BFS; keeps the current choice when empty"`
	Start     *int   `json:"start,omitempty" jsonschema:"Start node; keeps the current choice when absent"`
}

type StepArgs struct {
	Action  string `json:"action" jsonschema:"One of current, next, prev, reset or seek"`
	Index   int    `json:"index,omitempty" jsonschema:"Target step for seek"`
	Explain bool   `json:"explain,omitempty" jsonschema:"Attach an explanation of the resulting step"`
}

type AskArgs struct {
	Question string `json:"question" jsonschema:"The learner's question about the current step"`
}

type NewExerciseArgs struct {
	Kind string `json:"kind,omitempty" jsonschema:"traversal_order, visited_nodes, next_node or application; random when empty"`
}

type CheckAnswerArgs struct {
	Answer string `json:"answer" jsonschema:"The learner's answer text"`
}

type DescribeAlgorithmArgs struct {
	Algorithm string `json:"algorithm,omitempty" jsonschema:"DFS or BFS; the current algorithm when empty"`
	Concept   string `json:"concept,omitempty" jsonschema:"graph, stack or queue; describes a concept instead"`
}

type stepReply struct {
	session.Cursor
	Explanation string `json:"explanation,omitempty"`
}

type traverseReply struct {
	Algorithm traversal.Algorithm  `json:"algorithm"`
	Start     int                  `json:"start"`
	Order     []int                `json:"order"`
	Steps     []traversal.Snapshot `json:"steps"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "new_graph",
		Description: "Replaces the session graph with a random, preset or explicit graph",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NewGraphArgs) (*mcp.CallToolResult, any, error) {
		g, err := s.sess.NewGraph(session.GraphRequest{
			Nodes:    args.Nodes,
			Density:  args.Density,
			Directed: args.Directed,
			Preset:   args.Preset,
			Seed:     args.Seed,
			Edges:    args.Edges,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Graph not created: %v", err)), nil, nil
		}

		return jsonResult(session.ViewGraph(g)), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "traverse",
		Description: "Runs DFS or BFS on the session graph and returns every recorded step",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TraverseArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Algorithm) != "" {
			alg, err := traversal.ParseAlgorithm(args.Algorithm)
			if err != nil {
				return errorResult(err.Error()), nil, nil
			}
			if err := s.sess.SetAlgorithm(alg); err != nil {
				return errorResult(err.Error()), nil, nil
			}
		}
		if args.Start != nil {
			if err := s.sess.SetStart(*args.Start); err != nil {
				return errorResult(err.Error()), nil, nil
			}
		}
		steps := s.sess.Steps()

		return jsonResult(traverseReply{
			Algorithm: s.sess.Algorithm(),
			Start:     s.sess.Start(),
			Order:     traversal.FinalOrder(steps),
			Steps:     steps,
		}), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze_graph",
		Description: "Reports components, BFS levels, a cycle, a topological order and the adjacency matrix of the session graph",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		report, err := s.sess.Analysis(ctx)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		return jsonResult(report), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "step",
		Description: "Moves the step cursor and returns the snapshot under it",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StepArgs) (*mcp.CallToolResult, any, error) {
		var cur session.Cursor
		switch strings.ToLower(strings.TrimSpace(args.Action)) {
		case "", "current":
			cur = s.sess.Current()
		case "next":
			cur = s.sess.Next()
		case "prev", "previous":
			cur = s.sess.Prev()
		case "reset":
			cur = s.sess.Reset()
		case "seek":
			c, err := s.sess.Seek(args.Index)
			if err != nil {
				return errorResult(err.Error()), nil, nil
			}
			cur = c
		default:
			return errorResult(fmt.Sprintf("unknown action %q", args.Action)), nil, nil
		}

		reply := stepReply{Cursor: cur}
		if args.Explain {
			reply.Explanation = s.sess.Explain(ctx)
		}

		return jsonResult(reply), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "explain_step",
		Description: "Explains the step under the cursor in plain language",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		return textResult(s.sess.Explain(ctx)), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "ask",
		Description: "Asks the tutor a question about the current step",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AskArgs) (*mcp.CallToolResult, any, error) {
		reply, err := s.sess.Ask(ctx, args.Question)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		return textResult(reply), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "new_exercise",
		Description: "Enables exercise mode and generates an exercise for the current algorithm",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NewExerciseArgs) (*mcp.CallToolResult, any, error) {
		var kind exercise.Kind
		if strings.TrimSpace(args.Kind) != "" {
			k, err := exercise.ParseKind(args.Kind)
			if err != nil {
				return errorResult(err.Error()), nil, nil
			}
			kind = k
		}
		ex, err := s.sess.NewExercise(kind)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		return jsonResult(ex), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_answer",
		Description: "Checks an answer against the current exercise and returns feedback",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CheckAnswerArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(s.sess.CheckAnswer(args.Answer)), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "describe_algorithm",
		Description: "Returns the tutorial text for an algorithm or a concept",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DescribeAlgorithmArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Concept) != "" {
			text, err := tutorial.Concept(args.Concept)
			if err != nil {
				return errorResult(fmt.Sprintf("%v; known concepts: %s", err, strings.Join(tutorial.Concepts(), ", "))), nil, nil
			}
			return textResult(text), nil, nil
		}

		alg := s.sess.Algorithm()
		if strings.TrimSpace(args.Algorithm) != "" {
			a, err := traversal.ParseAlgorithm(args.Algorithm)
			if err != nil {
				return errorResult(err.Error()), nil, nil
			}
			alg = a
		}
		text, err := tutorial.Algorithm(alg)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		return textResult(text), nil, nil
	})
}
