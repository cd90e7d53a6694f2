// Copyright (c) Quorum Authors.
// Licensed under the MIT License.

/*
Package canonical 将候选答案归一化为可比较的规范形式。

# 概述

投票引擎依赖字符串相等来聚合票数，因此两个语义相同、表面格式不同的
答案必须归一到同一规范形式。本包是纯函数实现，无网络与副作用。

# 归一化规则

  - 自由文本模式：去除首尾空白，内部空白折叠为单个空格。
  - Schema 模式：从原始文本中提取最后一个完整 JSON 对象（模型常在
    结束括号后追加解释性文字），解析后按键名排序重新序列化，
    数字统一为最短十进制表示，使 {"a":1.0} 与 { "a" : 1 } 相等。

# 失败语义

Schema 模式下解析失败返回 NOT_CANONICALIZABLE 错误，缺失必填字段
返回 *FieldError；两者均由 redflag 包升级为红旗，绝不静默修补。
*/
package canonical
