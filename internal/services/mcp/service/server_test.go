package service

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/louisbranch/im-hungry/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connectTestSession serves a fully wired server over in-memory transports
// and returns a connected client session.
func connectTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	server, err := New(ctx, Config{ToolTimeout: 5 * time.Second})
	if err != nil {
		cancel()
		t.Fatalf("new server: %v", err)
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
		_ = session.Close()
	})
	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	return result
}

func decodeText(t *testing.T, result *mcp.CallToolResult, target any) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("expected text content")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", result.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), target); err != nil {
		t.Fatalf("decode %s: %v", text.Text, err)
	}
}

// structuredList returns the array under key in the structured tool output,
// which must be a JSON object.
func structuredList(t *testing.T, result *mcp.CallToolResult, key string) []any {
	t.Helper()

	object, ok := result.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content = %T, want object", result.StructuredContent)
	}
	list, ok := object[key].([]any)
	if !ok {
		t.Fatalf("structured %q = %T, want array", key, object[key])
	}
	return list
}

func TestServerListsToolsAndResources(t *testing.T) {
	session := connectTestSession(t)
	ctx := context.Background()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	want := []string{"check_delivery_estimate", "get_menu", "search_menu_items", "search_restaurants"}
	if len(names) != len(want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("tools = %v, want %v", names, want)
		}
	}

	resources, err := session.ListResources(ctx, nil)
	if err != nil {
		t.Fatalf("list resources: %v", err)
	}
	if len(resources.Resources) != 3 {
		t.Fatalf("resources = %d, want 3", len(resources.Resources))
	}
	for _, resource := range resources.Resources {
		read, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: resource.URI})
		if err != nil {
			t.Fatalf("read %s: %v", resource.URI, err)
		}
		if len(read.Contents) != 1 || read.Contents[0].MIMEType != "application/json" {
			t.Fatalf("unexpected contents for %s", resource.URI)
		}
		if !json.Valid([]byte(read.Contents[0].Text)) {
			t.Fatalf("%s is not valid JSON: %s", resource.URI, read.Contents[0].Text)
		}
	}

	if _, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "user://nope"}); err == nil {
		t.Fatal("expected error for unknown resource")
	}
}

func TestServerSearchRestaurantsAcrossProviders(t *testing.T) {
	session := connectTestSession(t)

	result := callTool(t, session, domain.SearchRestaurantsToolName, map[string]any{"query": "pizza", "location": "94102"})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	var restaurants []domain.RestaurantResult
	decodeText(t, result, &restaurants)
	if len(restaurants) != 3 {
		t.Fatalf("restaurants = %d, want 3", len(restaurants))
	}
	wantIDs := []string{"dd-2", "ue-2", "gh-2"}
	wantServices := []string{"doordash", "ubereats", "grubhub"}
	for i := range wantIDs {
		if restaurants[i].ID != wantIDs[i] || restaurants[i].Service != wantServices[i] {
			t.Fatalf("restaurants[%d] = %+v", i, restaurants[i])
		}
	}
	if got := structuredList(t, result, "restaurants"); len(got) != 3 {
		t.Fatalf("structured restaurants = %d, want 3", len(got))
	}

	menuResult := callTool(t, session, domain.GetMenuToolName, map[string]any{"restaurantId": restaurants[1].ID})
	if menuResult.IsError {
		t.Fatalf("unexpected tool error: %+v", menuResult.Content)
	}
	var menu domain.MenuResult
	decodeText(t, menuResult, &menu)
	if menu.RestaurantName != "Pizza Express" || len(menu.Items) != 2 || menu.Items[0].ID != "ue-item-1" {
		t.Fatalf("unexpected menu: %+v", menu)
	}
}

func TestServerGetMenuUnknownTagIsToolError(t *testing.T) {
	session := connectTestSession(t)

	result := callTool(t, session, domain.GetMenuToolName, map[string]any{"restaurantId": "zz-1"})
	if !result.IsError {
		t.Fatal("expected isError result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || text.Text == "" {
		t.Fatalf("expected error message, got %+v", result.Content)
	}
}

func TestServerSearchMenuItems(t *testing.T) {
	session := connectTestSession(t)

	result := callTool(t, session, domain.SearchMenuItemsToolName, map[string]any{"query": "pizza", "location": "94102", "limit": 1})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	var items []domain.DishResult
	decodeText(t, result, &items)
	if len(items) != 1 || items[0].Name != "Margherita Pizza" || items[0].RestaurantID != "dd-2" {
		t.Fatalf("items = %+v", items)
	}
	if got := structuredList(t, result, "items"); len(got) != 1 {
		t.Fatalf("structured items = %d, want 1", len(got))
	}

	// Fractional limits are floored rather than rejected.
	result = callTool(t, session, domain.SearchMenuItemsToolName, map[string]any{"query": "pizza", "location": "94102", "limit": 1.5})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	items = nil
	decodeText(t, result, &items)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}

	// Only restaurants whose name or cuisine matches are inspected.
	result = callTool(t, session, domain.SearchMenuItemsToolName, map[string]any{"query": "roll", "location": "94102"})
	items = nil
	decodeText(t, result, &items)
	if items == nil || len(items) != 0 {
		t.Fatalf("items = %#v, want empty array", items)
	}

	result = callTool(t, session, domain.SearchMenuItemsToolName, map[string]any{"query": "sushi", "location": "94102"})
	items = nil
	decodeText(t, result, &items)
	if len(items) != 6 {
		t.Fatalf("items = %d, want 6", len(items))
	}
	if items[0].RestaurantID != "dd-3" || items[0].Name != "Salmon Roll" || items[0].Service != "doordash" {
		t.Fatalf("items[0] = %+v", items[0])
	}
}

func TestServerCheckDeliveryEstimate(t *testing.T) {
	session := connectTestSession(t)

	result := callTool(t, session, domain.CheckDeliveryEstimateToolName, map[string]any{"restaurantId": "ue-3", "location": "94102"})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	var out domain.DeliveryEstimateResult
	decodeText(t, result, &out)
	if out.Service != "ubereats" || out.EstimatedTime != 30 || out.DeliveryFee != 5.99 || out.MinimumOrder != 15 {
		t.Fatalf("unexpected estimate: %+v", out)
	}
}
