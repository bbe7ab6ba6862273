package catalog

// Default returns the built-in Spark error catalog: twelve categories
// covering memory, SQL, execution, runtime, I/O, network, serialization,
// configuration, auth, database, performance and generic critical keywords.
func Default() *Catalog {
	return New(defaultSpecs())
}

func defaultSpecs() []Spec {
	return []Spec{
		{
			Key:      "memory_errors",
			Label:    "Memory Management",
			Severity: "critical",
			Weight:   100,
			Patterns: []string{
				`outofmemoryerror`,
				`java\.lang\.outofmemoryerror`,
				`container\s+killed.*memory`,
				`executor\s+lost.*outofmemory`,
				`gc\s+overhead\s+limit\s+exceeded`,
				`unable\s+to\s+allocate\s+.*\s+bytes`,
				`heap\s+space\s+exhausted`,
				`metaspace\s+out\s+of\s+memory`,
				`direct\s+buffer\s+memory\s+exceeded`,
				`oom\s+killer`,
				`memory\s+allocation\s+failed`,
			},
			Remedies: []string{
				"Increase driver memory: --driver-memory 8g or spark.driver.memory=8g",
				"Increase executor memory: --executor-memory 4g or spark.executor.memory=4g",
				"Optimize partitioning to reduce data skew: df.repartition(200) or df.coalesce(100)",
				"Review broadcast join thresholds: spark.sql.adaptive.autoBroadcastJoinThreshold",
				"Use efficient caching strategies: df.cache().count() before reuse",
				"Consider spill-to-disk settings: spark.sql.adaptive.coalescePartitions.enabled=true",
				"Monitor GC settings: -XX:+UseG1GC -XX:MaxGCPauseMillis=200",
			},
		},
		{
			Key:      "spark_sql_errors",
			Label:    "SQL Analysis",
			Severity: "high",
			Weight:   90,
			Patterns: []string{
				`analysisexception`,
				`org\.apache\.spark\.sql\.analysisexception`,
				`table\s+or\s+view\s+not\s+found`,
				`cannot\s+resolve.*given\s+input\s+columns`,
				`column\s+.*\s+does\s+not\s+exist`,
				`path\s+does\s+not\s+exist`,
				`schema\s+mismatch`,
				`invalid\s+column\s+reference`,
				`ambiguous\s+reference\s+to\s+fields`,
				`unresolved\s+attribute`,
				`unsupported\s+data\s+type`,
			},
			Remedies: []string{
				"Verify table/view existence: SHOW TABLES LIKE 'table_name'",
				"Check column names and case sensitivity in queries",
				"Ensure proper schema qualification: database.table.column",
				"Validate data types and schema compatibility",
				"Check table permissions and access rights",
				"Use DESCRIBE EXTENDED table_name for schema details",
				"Consider using fully qualified paths for external tables",
			},
		},
		{
			Key:      "spark_execution_errors",
			Label:    "Spark Execution",
			Severity: "high",
			Weight:   85,
			Patterns: []string{
				`sparkexception`,
				`org\.apache\.spark\.sparkexception`,
				`job\s+\d+\s+failed`,
				`stage\s+\d+\s+failed`,
				`task\s+failed`,
				`executor\s+\d+\s+lost`,
				`driver\s+stacktrace`,
				`application\s+failed`,
				`shuffle\s+fetch\s+failed`,
				`broadcast\s+failed`,
				`rdd\s+operation\s+failed`,
			},
			Remedies: []string{
				"Check cluster resource allocation and availability",
				"Review stage failure patterns for data skew issues",
				"Optimize shuffle operations: spark.sql.adaptive.enabled=true",
				"Consider dynamic allocation: spark.dynamicAllocation.enabled=true",
				"Monitor executor failures and restart cluster if needed",
				"Check for network issues between driver and executors",
				"Review task retry and backoff configurations",
			},
		},
		{
			Key:      "application_errors",
			Label:    "Application Runtime",
			Severity: "high",
			Weight:   80,
			Patterns: []string{
				`\b(?:exception|error|failure|fatal)\b.*\n?.*\bat\s+[a-zA-Z0-9_.$]+\.[a-zA-Z0-9_$]+\(`,
				`\bexception\s+in\s+thread\b`,
				`caused\s+by:.*exception`,
				`\berror\s*:\s*\w+`,
				`\bfatal\s+error\b`,
				`\bcritical\s+error\b`,
				`\bsevere\s+error\b`,
				`\bunhandled\s+exception\b`,
				`\bstack\s+overflow\b`,
				`\bsegmentation\s+fault\b`,
				`\bcore\s+dumped\b`,
			},
			Remedies: []string{
				"Review application logs for stack traces and root cause",
				"Check for null pointer exceptions and handle edge cases",
				"Validate input data quality and schema consistency",
				"Implement proper error handling and try-catch blocks",
				"Review code for infinite loops or recursive calls",
				"Monitor resource usage and optimize algorithms",
				"Use defensive programming practices for data validation",
			},
		},
		{
			Key:      "io_errors",
			Label:    "File I/O",
			Severity: "high",
			Weight:   75,
			Patterns: []string{
				`filenotfoundexception`,
				`ioexception`,
				`no\s+such\s+file\s+or\s+directory`,
				`permission\s+denied`,
				`access\s+denied`,
				`disk\s+space\s+exhausted`,
				`no\s+space\s+left\s+on\s+device`,
				`read\s+timed\s+out`,
				`write\s+failed`,
				`cannot\s+open\s+file`,
				`file\s+is\s+corrupted`,
				`bad\s+file\s+descriptor`,
				`resource\s+temporarily\s+unavailable`,
			},
			Remedies: []string{
				"Verify file paths and S3 bucket permissions",
				"Check AWS credentials and IAM policies",
				"Ensure files exist at specified locations: aws s3 ls s3://bucket/path/",
				"Review file format compatibility (parquet, delta, json, csv)",
				"Check for special characters or encoding issues in file paths",
				"Monitor disk space on cluster nodes",
				"Consider using retry mechanisms for transient I/O failures",
			},
		},
		{
			Key:      "network_errors",
			Label:    "Network",
			Severity: "medium",
			Weight:   70,
			Patterns: []string{
				`connection\s+refused`,
				`connection\s+timeout`,
				`connection\s+reset`,
				`unknownhostexception`,
				`sockettimeoutexception`,
				`network\s+is\s+unreachable`,
				`host\s+is\s+unreachable`,
				`broken\s+pipe`,
				`connection\s+aborted`,
				`ssl\s+handshake\s+failed`,
				`certificate\s+error`,
				`dns\s+resolution\s+failed`,
			},
			Remedies: []string{
				"Test network connectivity: ping, telnet, curl commands",
				"Check security groups and firewall rules",
				"Verify DNS resolution for external services",
				"Increase timeout values: spark.network.timeout=800s",
				"Review VPC and subnet configurations",
				"Check for proxy or NAT gateway issues",
				"Monitor network latency and bandwidth utilization",
			},
		},
		{
			Key:      "serialization_errors",
			Label:    "Serialization",
			Severity: "high",
			Weight:   65,
			Patterns: []string{
				`serializationexception`,
				`notserializableexception`,
				`task\s+not\s+serializable`,
				`classnotfoundexception`,
				`classcastexception`,
				`nosuchmethodexception`,
				`incompatible\s+types`,
				`type\s+mismatch`,
				`serialization\s+failed`,
				`deserialization\s+failed`,
			},
			Remedies: []string{
				"Ensure all objects in closures are serializable",
				"Use broadcast variables for large read-only data: spark.broadcast(data)",
				"Avoid capturing non-serializable objects in UDFs",
				"Consider using case classes instead of regular classes",
				"Review custom serialization implementations",
				"Check for circular references in object graphs",
				"Use @transient annotation for non-serializable fields",
			},
		},
		{
			Key:      "config_errors",
			Label:    "Configuration",
			Severity: "medium",
			Weight:   60,
			Patterns: []string{
				`configuration\s+error`,
				`invalid\s+configuration`,
				`missing\s+configuration`,
				`property\s+not\s+found`,
				`environment\s+variable\s+not\s+set`,
				`classpath\s+error`,
				`library\s+not\s+found`,
				`dependency\s+conflict`,
				`version\s+mismatch`,
				`unsupported\s+version`,
			},
			Remedies: []string{
				"Review Spark configuration settings in spark-defaults.conf",
				"Check environment variables and system properties",
				"Validate classpath and library dependencies",
				"Ensure compatible versions of Spark and libraries",
				"Review cluster initialization scripts",
				"Check for configuration conflicts between different sources",
				"Use spark.conf.get() to verify runtime configuration values",
			},
		},
		{
			Key:      "auth_errors",
			Label:    "Authentication & Security",
			Severity: "high",
			Weight:   55,
			Patterns: []string{
				`authentication\s+failed`,
				`authorization\s+failed`,
				`access\s+token\s+expired`,
				`invalid\s+credentials`,
				`permission\s+denied`,
				`unauthorized\s+access`,
				`forbidden\s+access`,
				`ssl\s+certificate\s+error`,
				`kerberos\s+authentication\s+failed`,
				`security\s+exception`,
			},
			Remedies: []string{
				"Verify AWS credentials and refresh if expired",
				"Check IAM roles and policies for required permissions",
				"Review Kerberos configuration and ticket renewal",
				"Validate SSL certificates and trust stores",
				"Ensure proper token-based authentication setup",
				"Check for expired or revoked access tokens",
				"Review security group and network ACL configurations",
			},
		},
		{
			Key:      "database_errors",
			Label:    "Database",
			Severity: "high",
			Weight:   50,
			Patterns: []string{
				`sql\s+exception`,
				`database\s+connection\s+failed`,
				`table\s+does\s+not\s+exist`,
				`duplicate\s+key\s+value`,
				`constraint\s+violation`,
				`deadlock\s+detected`,
				`lock\s+timeout`,
				`transaction\s+failed`,
				`rollback\s+failed`,
				`connection\s+pool\s+exhausted`,
			},
			Remedies: []string{
				"Check database connectivity and credentials",
				"Review SQL query syntax and compatibility",
				"Monitor database connection pool settings",
				"Check for table locks and transaction conflicts",
				"Validate database schema and permissions",
				"Review indexing strategy for query performance",
				"Consider connection timeout and retry settings",
			},
		},
		{
			Key:      "performance_issues",
			Label:    "Performance",
			Severity: "medium",
			Weight:   45,
			Patterns: []string{
				`performance\s+degradation`,
				`slow\s+query`,
				`timeout\s+exceeded`,
				`resource\s+exhausted`,
				`thread\s+pool\s+exhausted`,
				`cpu\s+usage\s+high`,
				`gc\s+pressure`,
				`long\s+running\s+task`,
				`bottleneck\s+detected`,
				`queue\s+full`,
			},
			Remedies: []string{
				"Monitor cluster resource utilization (CPU, memory, I/O)",
				"Enable Spark UI and analyze job execution metrics",
				"Use adaptive query execution: spark.sql.adaptive.enabled=true",
				"Optimize data formats: use Parquet or Delta Lake",
				"Review partitioning strategy for large datasets",
				"Consider data locality and shuffle optimization",
				"Implement query caching for repeated operations",
			},
		},
		{
			Key:      "critical_keywords",
			Label:    "Critical Keywords",
			Severity: "medium",
			Weight:   40,
			Patterns: []string{
				`\bfailed\b.*\berror\b`,
				`\berror\b.*\bfailed\b`,
				`\bfatal\b.*\b(?:error|exception|failure)\b`,
				`\bcritical\b.*\b(?:error|exception|failure)\b`,
				`\bsevere\b.*\b(?:error|exception|failure)\b`,
				`\baborted\b.*\b(?:error|exception|failure)\b`,
				`\bpanic\b.*\b(?:error|exception|failure)\b`,
				`\bcrash\b.*\b(?:error|exception|failure)\b`,
			},
			Remedies: []string{
				"Review detailed error messages and stack traces",
				"Check system logs for additional context",
				"Identify patterns in error occurrence timing",
				"Implement comprehensive logging and monitoring",
				"Review recent changes that might have caused issues",
				"Consider rollback to last known good configuration",
				"Escalate to appropriate support channels if needed",
			},
		},
	}
}
