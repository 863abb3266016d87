package utils

import (
	"context"

	"bitbucket.org/mmdatafocus/console_backend/appctx"
)

var (
	ContextKeyToken         = appctx.ContextKeyToken
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyUserName      = appctx.ContextKeyUserName
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
	ContextKeyPageId        = appctx.ContextKeyPageId
)

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyToken)
}

func SetTokenInContext(ctx context.Context, token string) context.Context {
	return appctx.SetString(ctx, ContextKeyToken, token)
}

func GetUserIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserId)
}

func SetUserIdInContext(ctx context.Context, id string) context.Context {
	return appctx.SetString(ctx, ContextKeyUserId, id)
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserName)
}

func SetUserNameInContext(ctx context.Context, name string) context.Context {
	return appctx.SetString(ctx, ContextKeyUserName, name)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetCorrelationIdInContext(ctx context.Context, id string) context.Context {
	return appctx.SetString(ctx, ContextKeyCorrelationId, id)
}

func GetPageIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyPageId)
}

func SetPageIdInContext(ctx context.Context, id string) context.Context {
	return appctx.SetString(ctx, ContextKeyPageId, id)
}
