package agent

import (
	"context"
	"fmt"

	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/date"
	"github.com/rentfolio/rentfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a rental-property investor. He is here primarily to understand the operating
			figures of his properties: income, expenses, cash flow, and how the month is going.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The user will assume that you know about his properties, check the
			ledger first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the market advisor expert, grounded on Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert real-estate advisor.
		Very well aware of rental markets, lending conditions, insurance and tax practice,
		and the latest news about housing. Ask the Advisor whenever you need recent or
		grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate investing. You can search and find about anything
			related to rental markets, mortgage rates, insurance, property taxes and local
			regulations. You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the bookkeeper expert, in charge of the user's ledger.
// The load function supplies a fresh ledger per call.
func NewBookkeeper(load func() (*rentfolio.Ledger, error)) *Expert {
	lib := []Function{propertiesFunc(load), metricsFunc(load), summaryFunc(load)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's rental ledger.
		He can list the properties, compute the operating metrics of any of them, and report
		on the whole portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's rental ledger.
				You know how to use the Tools to extract relevant information about the user's
				properties and their operating figures. You are part of a team of experts, yours
				is everything recorded in the ledger. They might ask you questions about the
				user's properties, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio
				  - list of declared properties
				  - operating metrics of one property
				  - portfolio summary
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

// respond builds a FunctionResponse from a markdown payload or an error.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name}
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

func propertiesFunc(load func() (*rentfolio.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Properties",
			Description: `Properties lists all declared properties with their id, name, address and strategy.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of the declared properties.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return respond(id, "Properties", "", err)
			}
			var out string
			for p := range ledger.Properties() {
				out += fmt.Sprintf("- %s: %s, %s (%s)\n", p.ID, p.Name, p.Address, p.Strategy)
			}
			if out == "" {
				out = "No properties declared yet."
			}
			return respond(id, "Properties", out, nil)
		},
	}
}

func metricsFunc(load func() (*rentfolio.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Metrics",
			Description: `Metrics computes the operating metrics of one property: gross income,
			fixed expenses, CapEx reserve, NOI, debt service, net cash flow and margin.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"property": {
						Type:        genai.TypeString,
						Description: "The id of the property.",
					},
				},
				Required: []string{"property"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the operating metrics.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			property, ok := args["property"].(string)
			if !ok {
				return respond(id, "Metrics", "", fmt.Errorf("argument 'property' is not a string but %T", args["property"]))
			}
			ledger, err := load()
			if err != nil {
				return respond(id, "Metrics", "", err)
			}
			m, err := ledger.OperatingMetrics(property, rentfolio.Money{})
			if err != nil {
				return respond(id, "Metrics", "", err)
			}
			return respond(id, "Metrics", renderer.MetricsMarkdown(m), nil)
		},
	}
}

func summaryFunc(load func() (*rentfolio.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Summary",
			Description: `Summary reports the operating metrics of every property and the portfolio totals.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted portfolio summary.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return respond(id, "Summary", "", err)
			}
			report, err := rentfolio.NewSummaryReport(ledger, date.Today())
			if err != nil {
				return respond(id, "Summary", "", err)
			}
			return respond(id, "Summary", renderer.SummaryMarkdown(report), nil)
		},
	}
}
