package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/labjo/pkg/rows"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetManifestTool(srv, svc)
	registerListDatasetsTool(srv, svc)
	registerAddDatasetTool(srv, svc)
	registerListMilestonesTool(srv, svc)
	registerAddMilestoneTool(srv, svc)
	registerPunchInTool(srv, svc)
	registerPunchOutTool(srv, svc)
	registerWorklogReportTool(srv, svc)
}

func registerGetManifestTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_manifest",
		mcp.WithDescription("Fetch the project manifest with any validation problems."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, problems, err := svc.Manifest(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"manifest": doc,
			"problems": problems,
		})
	})
}

func registerListDatasetsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_datasets",
		mcp.WithDescription("List the project's datasets."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		datasets, err := svc.ListDatasets(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"datasets": datasets,
			"count":    len(datasets),
		})
	})
}

func registerAddDatasetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_dataset",
		mcp.WithDescription("Add a dataset to the manifest and save it."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Dataset name; rows without a name are dropped."),
		),
		mcp.WithString("modality",
			mcp.Description("Imaging modality, e.g. confocal or lightsheet."),
		),
		mcp.WithString("path",
			mcp.Description("Primary storage location."),
		),
		mcp.WithString("raw_size_gb",
			mcp.Description("Approximate raw size in GB; unparseable values are omitted."),
		),
		mcp.WithBoolean("local_mount",
			mcp.Description("Whether a local working copy is kept."),
		),
		mcp.WithString("local_path",
			mcp.Description("Local working-copy location."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name       string `json:"name"`
			Modality   string `json:"modality"`
			Path       string `json:"path"`
			RawSizeGB  string `json:"raw_size_gb"`
			LocalMount bool   `json:"local_mount"`
			LocalPath  string `json:"local_path"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddDataset(ctx, rows.DatasetRow{
			Name:       args.Name,
			Modality:   args.Modality,
			Path:       args.Path,
			RawSizeGB:  args.RawSizeGB,
			LocalMount: args.LocalMount,
			LocalPath:  args.LocalPath,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMilestonesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_milestones",
		mcp.WithDescription("List the project timeline."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		milestones, err := svc.ListMilestones(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"milestones": milestones,
			"count":      len(milestones),
		})
	})
}

func registerAddMilestoneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_milestone",
		mcp.WithDescription("Add a milestone to the timeline and save the manifest."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Milestone name."),
		),
		mcp.WithString("due",
			mcp.Description("Due date, ISO form preferred; unparseable dates are omitted."),
		),
		mcp.WithString("status",
			mcp.Description("Milestone status such as pending, in-progress, done, blocked."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.AddMilestone(ctx, rows.MilestoneRow{
			Name:   name,
			Due:    request.GetString("due", ""),
			Status: request.GetString("status", ""),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPunchInTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"punch_in",
		mcp.WithDescription("Start a new work-log task."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Task name."),
		),
		mcp.WithString("type",
			mcp.Description("Task type, e.g. analysis, meeting, writing."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.PunchIn(ctx, name, request.GetString("type", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPunchOutTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"punch_out",
		mcp.WithDescription("Complete the current task, or pause it instead."),
		mcp.WithBoolean("pause",
			mcp.Description("Pause instead of completing."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.PunchOut(ctx, request.GetBool("pause", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerWorklogReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"worklog_report",
		mcp.WithDescription("Sum worked time over a window such as 1w or 3d."),
		mcp.WithString("window",
			mcp.Description("Report window; defaults to one week."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := svc.WorklogReport(ctx, request.GetString("window", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
