// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package config 提供 Quorum 的统一配置加载。

# 概述

配置优先级: 默认值 → YAML 文件 → 环境变量。环境变量键由前缀与
字段的 yaml 标签逐级拼接而成，例如 QUORUM_POLICY_MAX_ATTEMPTS、
QUORUM_PROVIDER_API_KEY。

# 典型用法

	cfg, err := config.NewLoader().
	    WithConfigPath("quorum.yaml").
	    WithEnvPrefix("QUORUM").
	    Load()

	logger, _ := cfg.Log.Build()
*/
package config
