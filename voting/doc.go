// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package voting 实现采样调度器与投票引擎组合根。

# 概述

Engine.Decide 是整个引擎的唯一入口：校验策略、派生红旗边界、
构造新的计票器，然后交给调度器驱动采样循环，最终返回裁决与
完整的选票审计轨迹。每次 Decide 相互独立，引擎自身无跨调用状态。

# 调度模型

信号量限定在途采样数（ConcurrencyLimit），可选速率限制器约束
发起节奏。每次调用完成后走 过滤 → 规范化 → 计票 → 胜出检测 的
串行路径；采样本身是唯一的阻塞点。

# 终止条件

  - 胜出：最高票领先至少 K 票，立即协作式取消所有在途调用，
    迟到结果被丢弃，不会二次计票。
  - 预算耗尽：返回 INCONCLUSIVE 并携带当前领先者供遥测使用，
    绝不把领先者伪装成胜出答案。
  - 超时 / 外部取消：返回 ABORTED，不合成任何答案。

# 可观测性

每次决策产生一个 quorum.decide 追踪 Span；指标（决策结果分布、
选票状态、耗时直方图、在途数）通过 internal/metrics 上报。
*/
package voting
