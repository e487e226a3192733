package service

import (
	"fmt"

	"github.com/louisbranch/im-hungry/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mcpFoodToolsModuleName     = "food-tools"
	mcpUserResourcesModuleName = "user-resources"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.SearchRestaurantsInput, domain.SearchRestaurantsResult](),
	newMCPToolRegistrar[domain.GetMenuInput, domain.MenuResult](),
	newMCPToolRegistrar[domain.SearchMenuItemsInput, domain.SearchMenuItemsResult](),
	newMCPToolRegistrar[domain.CheckDeliveryEstimateInput, domain.DeliveryEstimateResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(food domain.FoodService, users domain.UserDataStore, invoker domain.Invoker) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpFoodToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerFoodTools(registrar, food, invoker)
			},
		},
		{
			name: mcpUserResourcesModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				registerUserResources(registrar, users)
				return nil
			},
		},
	}
}

func registerFoodTools(registrar mcpRegistrationTarget, food domain.FoodService, invoker domain.Invoker) error {
	if food == nil {
		return fmt.Errorf("food service is required")
	}
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.SearchRestaurantsTool(), handler: domain.SearchRestaurantsHandler(food, invoker)},
		{tool: domain.GetMenuTool(), handler: domain.GetMenuHandler(food, invoker)},
		{tool: domain.SearchMenuItemsTool(), handler: domain.SearchMenuItemsHandler(food, invoker)},
		{tool: domain.CheckDeliveryEstimateTool(), handler: domain.CheckDeliveryEstimateHandler(food, invoker)},
	}
	for _, registration := range registrations {
		if err := registrar.AddTool(registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerUserResources(registrar mcpRegistrationTarget, users domain.UserDataStore) {
	registrar.AddResource(domain.UserPreferencesResource(), domain.UserPreferencesResourceHandler(users))
	registrar.AddResource(domain.UserLocationResource(), domain.UserLocationResourceHandler(users))
	registrar.AddResource(domain.UserOrderHistoryResource(), domain.UserOrderHistoryResourceHandler(users))
}
